package chart

import (
	"strconv"
	"strings"

	"github.com/lineal-viz/lineal/internal/scene"
)

// pathGenerator converts a point sequence into path data using the current
// scales. Generators are cached in derivedState and regenerated only on
// explicit re-derivation, not per draw call.
type pathGenerator struct {
	x             LinearScale
	y             LinearScale
	interpolation string
}

func newPathGenerator(x, y LinearScale, interpolation string) *pathGenerator {
	return &pathGenerator{x: x, y: y, interpolation: interpolation}
}

// Path returns SVG path data for the points, or "" for an empty series.
func (g *pathGenerator) Path(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	px := make([]float64, len(points))
	py := make([]float64, len(points))
	for i, p := range points {
		px[i] = g.x.Scale(p.X)
		py[i] = g.y.Scale(p.Y)
	}

	if g.interpolation == InterpolationMonotone && len(points) > 2 {
		return monotonePath(px, py)
	}
	return linearPath(px, py)
}

func linearPath(px, py []float64) string {
	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(coord(px[0], py[0]))
	for i := 1; i < len(px); i++ {
		sb.WriteString("L")
		sb.WriteString(coord(px[i], py[i]))
	}
	return sb.String()
}

// monotonePath emits cubic segments with Fritsch-Carlson tangents, which
// never overshoot the data.
func monotonePath(px, py []float64) string {
	n := len(px)

	// Secant slopes between consecutive points.
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := px[i+1] - px[i]
		if dx == 0 {
			d[i] = 0
			continue
		}
		d[i] = (py[i+1] - py[i]) / dx
	}

	// Tangents: average of adjacent secants, zeroed at local extrema.
	m := make([]float64, n)
	m[0] = d[0]
	m[n-1] = d[n-2]
	for i := 1; i < n-1; i++ {
		if d[i-1]*d[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = (d[i-1] + d[i]) / 2
		}
	}

	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(coord(px[0], py[0]))
	for i := 0; i < n-1; i++ {
		dx := (px[i+1] - px[i]) / 3
		sb.WriteString("C")
		sb.WriteString(coord(px[i]+dx, py[i]+dx*m[i]))
		sb.WriteString(" ")
		sb.WriteString(coord(px[i+1]-dx, py[i+1]-dx*m[i+1]))
		sb.WriteString(" ")
		sb.WriteString(coord(px[i+1], py[i+1]))
	}
	return sb.String()
}

func coord(x, y float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64) + "," + strconv.FormatFloat(y, 'f', 2, 64)
}

// renderData selects the update mode for the chart's lifetime and draws
// the initial paths.
func (c *Chart) renderData() {
	c.mode = ParseUpdateMode(c.cfg.Mode)
	c.update = c.makeUpdate(c.mode)
	c.plot()
}

// plot rebuilds one path node per series from the current scales.
func (c *Chart) plot() {
	c.pathLayer.RemoveChildren()

	for i, s := range c.store.Snapshot() {
		d := c.derived.gen.Path(s.Points)
		if d == "" {
			continue
		}
		path := c.pathLayer.Append(scene.KindPath, "series-"+strconv.Itoa(i))
		path.SetAttrs(map[string]string{
			"d":            d,
			"fill":         "none",
			"stroke":       c.seriesColor(i),
			"stroke-width": seriesStrokeWidth,
		})
	}
}
