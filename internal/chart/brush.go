package chart

import (
	"fmt"

	"github.com/lineal-viz/lineal/internal/scene"
)

// Brush is the optional mini-axis widget for x-domain selection. Its
// selected extent overwrites the main chart's x-domain through the same
// domain-change pipeline as any programmatic domain mutation.
type Brush struct {
	chart     *Chart
	layer     *scene.Node
	selection *scene.Node
	scale     LinearScale
	height    float64
}

// renderBrush builds the brush sub-chart below the plot area.
func (c *Chart) renderBrush() {
	bp := c.cfg.BrushProps
	snap := c.store.Snapshot()

	xMin, xMax, ok := extent(snap, false)
	if !ok {
		xMin, xMax = 0, 1
	}
	yMin, yMax, ok := extent(snap, true)
	if !ok {
		yMin, yMax = 0, 1
	}

	b := &Brush{
		chart:  c,
		scale:  NewLinearScale(xMin, xMax, 0, bp.Width),
		height: bp.Height,
	}

	offsetY := c.cfg.Margin.Top + c.derived.graphH + c.cfg.Margin.Bottom + bp.Margin.Top
	b.layer = c.root.Group("brush")
	b.layer.SetAttr("transform", fmt.Sprintf(
		"translate(%g,%g)", c.cfg.Margin.Left+bp.Margin.Left, offsetY))

	// Miniature of the reference series over the full data extent.
	yScale := NewLinearScale(yMin, yMax, bp.Height, 0)
	gen := newPathGenerator(b.scale, yScale, c.cfg.Interpolation)
	if first, ok := c.store.First(); ok {
		mini := b.layer.Append(scene.KindPath, "brush-path")
		mini.SetAttrs(map[string]string{
			"d":            gen.Path(first.Points),
			"fill":         "none",
			"stroke":       c.seriesColor(0),
			"stroke-width": "1",
		})
	}

	b.selection = b.layer.Append(scene.KindRect, "brush-selection")
	b.selection.SetAttrs(map[string]string{
		"x":       "0",
		"y":       "0",
		"width":   formatNum(bp.Width),
		"height":  formatNum(bp.Height),
		"fill":    axisColor,
		"opacity": "0.2",
	})

	c.brush = b
}

// Select applies a pixel-extent selection: the extent is inverse-mapped to
// data coordinates and installed as the main x-domain.
func (b *Brush) Select(pxLo, pxHi float64) {
	if pxLo > pxHi {
		pxLo, pxHi = pxHi, pxLo
	}
	rangeLo, rangeHi := b.scale.Range()
	if pxLo < rangeLo {
		pxLo = rangeLo
	}
	if pxHi > rangeHi {
		pxHi = rangeHi
	}

	b.selection.SetAttr("x", formatNum(pxLo))
	b.selection.SetAttr("width", formatNum(pxHi-pxLo))

	lo := b.scale.Invert(pxLo)
	hi := b.scale.Invert(pxHi)
	b.chart.SetXDomain(FixedDomain(lo, hi))
}

// Clear removes the selection and restores the data-driven x-domain.
func (b *Brush) Clear() {
	rangeLo, rangeHi := b.scale.Range()
	b.selection.SetAttr("x", formatNum(rangeLo))
	b.selection.SetAttr("width", formatNum(rangeHi-rangeLo))
	b.chart.SetXDomain(Domain{})
}

// Extent returns the current selection in data coordinates.
func (b *Brush) Extent() (lo, hi float64) {
	x := parseNum(b.selection.Attr("x"))
	w := parseNum(b.selection.Attr("width"))
	return b.scale.Invert(x), b.scale.Invert(x + w)
}
