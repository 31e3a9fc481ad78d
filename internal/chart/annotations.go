package chart

import (
	"sort"
	"strconv"

	"github.com/lineal-viz/lineal/internal/scene"
)

const legendOffsetX = 6.0

// renderAnnotations draws the title, caption, and legend.
func (c *Chart) renderAnnotations() {
	c.annotLayer.RemoveChildren()

	if c.cfg.Title != "" {
		title := c.annotLayer.Append(scene.KindText, "title")
		title.SetAttrs(map[string]string{
			"x":           formatNum(c.cfg.Canvas.Width / 2),
			"y":           "16",
			"text-anchor": "middle",
			"fill":        titleColor,
			"font-size":   "14",
		})
		title.SetText(c.cfg.Title)
	}

	if c.cfg.Caption != "" {
		caption := c.annotLayer.Append(scene.KindText, "caption")
		caption.SetAttrs(map[string]string{
			"x":           formatNum(c.cfg.Canvas.Width / 2),
			"y":           formatNum(c.cfg.Canvas.Height - 4),
			"text-anchor": "middle",
			"fill":        captionColor,
			"font-size":   "11",
		})
		caption.SetText(c.cfg.Caption)
	}

	c.renderLegend()
}

// renderLegend builds one label per series at the right edge of the plot.
// A configured label list whose length does not match the series count
// skips the legend with a diagnostic.
func (c *Chart) renderLegend() {
	c.legendLayer.RemoveChildren()

	labels := c.legendLabels()
	if labels == nil {
		return
	}

	series := c.store.Snapshot()
	for i, label := range labels {
		entry := c.legendLayer.Append(scene.KindText, "legend-"+strconv.Itoa(i))
		entry.SetAttrs(map[string]string{
			"x":         formatNum(c.derived.graphW + legendOffsetX),
			"y":         formatNum(c.legendAnchorY(series[i].Points, i)),
			"fill":      c.seriesColor(i),
			"font-size": "11",
		})
		entry.SetText(label)
	}
}

// legendLabels returns the labels to draw, or nil when the legend is
// skipped.
func (c *Chart) legendLabels() []string {
	n := c.store.Len()
	if len(c.cfg.Legend) > 0 {
		if len(c.cfg.Legend) != n {
			c.logger.Warn(
				"chart: legend label count does not match series count, skipping legend",
				"labels", len(c.cfg.Legend),
				"series", n,
			)
			return nil
		}
		return c.cfg.Legend
	}
	return c.store.Labels()
}

// updateLegend repositions legend labels so each tracks its series' value
// at the current right edge of the x-domain. Runs on every domain change.
func (c *Chart) updateLegend() {
	series := c.store.Snapshot()
	for i := range series {
		entry := c.legendLayer.Find("legend-" + strconv.Itoa(i))
		if entry == nil {
			continue
		}
		entry.SetAttr("x", formatNum(c.derived.graphW+legendOffsetX))
		entry.SetAttr("y", formatNum(c.legendAnchorY(series[i].Points, i)))
	}
}

// legendAnchorY returns the pixel y for a legend entry: the series' value
// at the trailing edge of the visible window, or a stacked fallback for an
// empty series.
func (c *Chart) legendAnchorY(points []Point, index int) float64 {
	idx := legendAnchorIndex(points, c.derived.xDomain[1])
	if idx < 0 {
		return float64(index+1) * 14
	}
	return c.derived.yScale.Scale(points[idx].Y)
}

// legendAnchorIndex locates, by ascending bisection, the largest index
// whose x does not exceed target, clamped into the valid range.
// Returns -1 for an empty slice.
func legendAnchorIndex(points []Point, target float64) int {
	if len(points) == 0 {
		return -1
	}
	i := sort.Search(len(points), func(i int) bool { return points[i].X > target }) - 1
	if i < 0 {
		i = 0
	}
	return i
}
