package chart

import (
	"fmt"
	"sort"

	"github.com/lineal-viz/lineal/internal/scene"
)

const cursorMarkerRadius = 3.5

// CursorHit identifies the data point nearest a pointer position.
type CursorHit struct {
	Series string
	Index  int
	Point  Point
}

// PointerMove handles pointer movement over the plot area, with px/py
// relative to the plot-area origin. When the data cursor is enabled, the
// position is inverse-mapped to data coordinates and a marker plus tooltip
// are drawn at the nearest data point.
func (c *Chart) PointerMove(px, py float64) {
	if !c.cfg.DataCursor {
		return
	}

	dataX := c.derived.xScale.Invert(px)
	hit, ok := c.locateNearest(dataX, py)
	if !ok {
		return
	}

	mx := c.derived.xScale.Scale(hit.Point.X)
	my := c.derived.yScale.Scale(hit.Point.Y)

	marker := c.cursorLayer.Find("cursor-marker")
	if marker == nil {
		marker = c.cursorLayer.Append(scene.KindCircle, "cursor-marker")
	}
	marker.ClearAnimations()
	marker.SetAttrs(map[string]string{
		"cx":      formatNum(mx),
		"cy":      formatNum(my),
		"r":       formatNum(cursorMarkerRadius),
		"fill":    c.seriesColor(c.seriesIndex(hit.Series)),
		"opacity": "1",
	})

	tip := c.cursorLayer.Find("cursor-tip")
	if tip == nil {
		tip = c.cursorLayer.Append(scene.KindText, "cursor-tip")
	}
	tip.ClearAnimations()
	tip.SetAttrs(map[string]string{
		"x":         formatNum(mx + 8),
		"y":         formatNum(my - 8),
		"fill":      tooltipColor,
		"font-size": "10",
		"opacity":   "1",
	})
	tip.SetText(fmt.Sprintf("%s: (%s, %s)",
		hit.Series, formatTick(hit.Point.X), formatTick(hit.Point.Y)))
}

// PointerLeave removes the cursor marker with a fade/shrink transition.
func (c *Chart) PointerLeave() {
	if !c.cfg.DataCursor {
		return
	}

	tr := scene.Transition{
		Duration: c.cfg.Transition.OnExit.Duration,
		Easing:   c.cfg.Transition.OnExit.Easing,
	}
	if marker := c.cursorLayer.Find("cursor-marker"); marker != nil {
		marker.Animate("opacity", "1", "0", tr)
		marker.Animate("r", formatNum(cursorMarkerRadius), "0", tr)
	}
	if tip := c.cursorLayer.Find("cursor-tip"); tip != nil {
		tip.Animate("opacity", "1", "0", tr)
	}
}

// locateNearest finds the data point nearest the pointer: per series the
// nearest x via bisection, then across series the smallest pixel-space
// distance to the pointer's y.
func (c *Chart) locateNearest(dataX, pixelY float64) (CursorHit, bool) {
	var best CursorHit
	bestDist := 0.0
	found := false

	for _, s := range c.store.Snapshot() {
		idx := nearestPointIndex(s.Points, dataX)
		if idx < 0 {
			continue
		}
		p := s.Points[idx]
		dx := c.derived.xScale.Scale(p.X) - c.derived.xScale.Scale(dataX)
		dy := c.derived.yScale.Scale(p.Y) - pixelY
		dist := dx*dx + dy*dy
		if !found || dist < bestDist {
			best = CursorHit{Series: s.Label, Index: idx, Point: p}
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// nearestPointIndex locates the point nearest target by x: bisection for
// the left neighbor, then the closer of the two neighbors, preferring the
// left one only when its distance is strictly smaller.
// Returns -1 for an empty slice.
func nearestPointIndex(points []Point, target float64) int {
	if len(points) == 0 {
		return -1
	}
	left := sort.Search(len(points), func(i int) bool { return points[i].X > target }) - 1
	if left < 0 {
		return 0
	}
	if left+1 >= len(points) {
		return left
	}
	if target-points[left].X < points[left+1].X-target {
		return left
	}
	return left + 1
}

// seriesIndex returns the draw index for a series label, or 0.
func (c *Chart) seriesIndex(label string) int {
	for i, l := range c.store.Labels() {
		if l == label {
			return i
		}
	}
	return 0
}
