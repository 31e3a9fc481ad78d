package chart

import (
	"strconv"
	"strings"

	"github.com/lineal-viz/lineal/internal/scene"
)

const (
	xTickCount = 6
	yTickCount = 5
	tickLen    = 5.0
)

// renderAxes derives the scales and draws the axis layer for the first
// time.
func (c *Chart) renderAxes() {
	c.deriveScales(nil)
	c.renderAxisNodes()
}

// RefreshAxes recomputes both scales from the current configuration and
// data and re-renders tick marks and axis labels. Idempotent: repeated
// calls with unchanged inputs produce identical scales and nodes.
func (c *Chart) RefreshAxes() {
	c.deriveScales(nil)
	c.renderAxisNodes()
}

// deriveScales recomputes the domain, scale, and path-generator cache.
//
// xOverride bypasses the configured x-domain policy; the window-mode
// update engine uses it to install the sliding viewport.
func (c *Chart) deriveScales(xOverride *[2]float64) {
	snap := c.store.Snapshot()

	xMin, xMax, ok := extent(snap, false)
	if !ok {
		xMin, xMax = 0, 1
	}
	yMin, yMax, ok := extent(snap, true)
	if !ok {
		yMin, yMax = 0, 1
	}

	var xLo, xHi float64
	if xOverride != nil {
		xLo, xHi = xOverride[0], xOverride[1]
	} else {
		xLo, xHi = c.cfg.XDomain.resolve(xMin, xMax)
	}
	yLo, yHi := c.cfg.YDomain.resolve(yMin, yMax)

	c.derived.xDomain = [2]float64{xLo, xHi}
	c.derived.yDomain = [2]float64{yLo, yHi}
	c.derived.xScale = NewLinearScale(xLo, xHi, 0, c.derived.graphW)
	c.derived.yScale = NewLinearScale(yLo, yHi, c.derived.graphH, 0)

	// The path generator is cached here and only here, so high-frequency
	// draw calls never reallocate it.
	c.derived.gen = newPathGenerator(c.derived.xScale, c.derived.yScale, c.cfg.Interpolation)
}

// renderAxisNodes rebuilds the axis layer: baselines, ticks, tick labels,
// and axis label text.
func (c *Chart) renderAxisNodes() {
	c.axisLayer.RemoveChildren()

	w, h := c.derived.graphW, c.derived.graphH

	xAxis := c.axisLayer.Group("x-axis")
	line := xAxis.Append(scene.KindLine, "x-axis-line")
	line.SetAttrs(map[string]string{
		"x1": "0", "y1": formatNum(h),
		"x2": formatNum(w), "y2": formatNum(h),
		"stroke": axisColor,
	})
	for i, t := range c.derived.xScale.Ticks(xTickCount) {
		px := c.derived.xScale.Scale(t)
		tick := xAxis.Append(scene.KindLine, "x-tick-"+strconv.Itoa(i))
		tick.SetAttrs(map[string]string{
			"x1": formatNum(px), "y1": formatNum(h),
			"x2": formatNum(px), "y2": formatNum(h + tickLen),
			"stroke": axisColor,
		})
		label := xAxis.Append(scene.KindText, "x-tick-label-"+strconv.Itoa(i))
		label.SetAttrs(map[string]string{
			"x":           formatNum(px),
			"y":           formatNum(h + tickLen + 12),
			"text-anchor": "middle",
			"fill":        labelColor,
			"font-size":   "10",
		})
		label.SetText(formatTick(t))
	}
	if c.cfg.XLabel != "" {
		xl := xAxis.Append(scene.KindText, "x-axis-label")
		xl.SetAttrs(map[string]string{
			"x":           formatNum(w / 2),
			"y":           formatNum(h + tickLen + 28),
			"text-anchor": "middle",
			"fill":        labelColor,
			"font-size":   "11",
		})
		xl.SetText(c.cfg.XLabel)
	}

	yAxis := c.axisLayer.Group("y-axis")
	line = yAxis.Append(scene.KindLine, "y-axis-line")
	line.SetAttrs(map[string]string{
		"x1": "0", "y1": "0",
		"x2": "0", "y2": formatNum(h),
		"stroke": axisColor,
	})
	for i, t := range c.derived.yScale.Ticks(yTickCount) {
		py := c.derived.yScale.Scale(t)
		tick := yAxis.Append(scene.KindLine, "y-tick-"+strconv.Itoa(i))
		tick.SetAttrs(map[string]string{
			"x1": formatNum(-tickLen), "y1": formatNum(py),
			"x2": "0", "y2": formatNum(py),
			"stroke": axisColor,
		})
		label := yAxis.Append(scene.KindText, "y-tick-label-"+strconv.Itoa(i))
		label.SetAttrs(map[string]string{
			"x":           formatNum(-tickLen - 3),
			"y":           formatNum(py + 3),
			"text-anchor": "end",
			"fill":        labelColor,
			"font-size":   "10",
		})
		label.SetText(formatTick(t))
	}
	if c.cfg.YLabel != "" {
		yl := yAxis.Append(scene.KindText, "y-axis-label")
		yl.SetAttrs(map[string]string{
			"x":           formatNum(-c.cfg.Margin.Left + 12),
			"y":           formatNum(h / 2),
			"transform":   "rotate(-90," + formatNum(-c.cfg.Margin.Left+12) + "," + formatNum(h/2) + ")",
			"text-anchor": "middle",
			"fill":        labelColor,
			"font-size":   "11",
		})
		yl.SetText(c.cfg.YLabel)
	}
}

// formatTick formats an axis tick value compactly.
func formatTick(v float64) string {
	av := v
	if av < 0 {
		av = -av
	}
	switch {
	case v == 0:
		return "0"
	case av >= 1e6:
		return formatFloat(v/1e6, 1) + "M"
	case av >= 1e4:
		return formatFloat(v/1e3, 1) + "k"
	case av < 0.01:
		return strconv.FormatFloat(v, 'e', 1, 64)
	case av < 1:
		return formatFloat(v, 3)
	default:
		return formatFloat(v, 2)
	}
}

// formatFloat formats with the given decimals, trimming trailing zeros
// after the decimal point.
func formatFloat(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)

	if decimals > 0 && strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}

	if formatted == "" {
		formatted = "0"
	}
	return formatted
}
