// Package termview renders a chart into terminal cells.
//
// It is a thin host over the chart core: series geometry and domains come
// from the chart's scales, drawing uses braille patterns, and window-mode
// slides are replayed as frame-based animations.
package termview

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/lineal-viz/lineal/internal/chart"
)

// slideState tracks an in-flight window-slide animation in data units.
type slideState struct {
	active bool
	from   float64
	start  time.Time
	dur    time.Duration
	ease   func(float64) float64
	offset float64
}

// LineChart draws a chart.Chart using braille patterns.
type LineChart struct {
	linechart.Model

	chart  *chart.Chart
	styles []lipgloss.Style
	slide  slideState
	dirty  bool
}

// NewLineChart creates a terminal line chart bound to ch.
func NewLineChart(ch *chart.Chart, width, height int) *LineChart {
	xd := ch.XDomain()
	yd := ch.YDomain()

	lc := &LineChart{
		Model: linechart.New(width, height, xd[0], xd[1], yd[0], yd[1],
			linechart.WithXYSteps(4, 5),
		),
		chart: ch,
		dirty: true,
	}
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle

	snap := ch.Store().Snapshot()
	lc.styles = make([]lipgloss.Style, len(snap))
	for i := range snap {
		lc.styles[i] = seriesStyle(ch, i)
	}

	return lc
}

// Sync pulls the chart's current domains into the terminal axes and marks
// the view dirty. Call after any data or domain change.
func (lc *LineChart) Sync() {
	xd := lc.chart.XDomain()
	yd := lc.chart.YDomain()

	lc.SetXRange(xd[0], xd[1])
	lc.SetViewXRange(xd[0], xd[1])
	lc.SetYRange(yd[0], yd[1])
	lc.SetViewYRange(yd[0], yd[1])
	lc.dirty = true
}

// BeginSlide starts a window-slide animation from the given data-unit
// offset back to zero, using the chart's update transition timing.
// A new slide supersedes an in-flight one.
func (lc *LineChart) BeginSlide(offset float64, now time.Time) {
	cfg := lc.chart.Config()
	lc.slide = slideState{
		active: true,
		from:   offset,
		start:  now,
		dur:    cfg.Transition.OnUpdate.Duration,
		ease:   chart.EasingFunc(cfg.Transition.OnUpdate.Easing),
		offset: offset,
	}
	lc.dirty = true
}

// Advance steps the slide animation. Returns true while animating.
func (lc *LineChart) Advance(now time.Time) bool {
	if !lc.slide.active {
		return false
	}

	progress := float64(now.Sub(lc.slide.start)) / float64(lc.slide.dur)
	if progress >= 1 {
		lc.slide = slideState{}
		lc.dirty = true
		return false
	}

	lc.slide.offset = lc.slide.from * (1 - lc.slide.ease(progress))
	lc.dirty = true
	return true
}

// Dirty reports whether the chart needs a redraw.
func (lc *LineChart) Dirty() bool { return lc.dirty }

// DrawIfNeeded redraws only when marked dirty.
func (lc *LineChart) DrawIfNeeded() {
	if lc.dirty {
		lc.Draw()
	}
}

// Draw rasterizes all series into braille patterns.
func (lc *LineChart) Draw() {
	lc.Clear()
	lc.DrawXYAxisAndLabel()
	lc.dirty = false

	gw, gh := lc.GraphWidth(), lc.GraphHeight()
	if gw <= 0 || gh <= 0 {
		return
	}

	viewSpanX := lc.ViewMaxX() - lc.ViewMinX()
	viewSpanY := lc.ViewMaxY() - lc.ViewMinY()
	if viewSpanX <= 0 || viewSpanY <= 0 {
		return
	}
	xScale := float64(gw) / viewSpanX
	yScale := float64(gh) / viewSpanY

	startX := 0
	if lc.YStep() > 0 {
		startX = lc.Origin().X + 1
	}

	for si, s := range lc.chart.Store().Snapshot() {
		scaled := make([]canvas.Float64Point, len(s.Points))
		for i, p := range s.Points {
			scaled[i] = canvas.Float64Point{
				X: (p.X + lc.slide.offset - lc.ViewMinX()) * xScale,
				Y: clampFloat((p.Y-lc.ViewMinY())*yScale, 0, float64(gh)),
			}
		}
		points := clipSpanX(scaled, float64(gw))
		if len(points) == 0 {
			continue
		}

		bGrid := graph.NewBrailleGrid(gw, gh, 0, float64(gw), 0, float64(gh))

		if len(points) == 1 {
			bGrid.Set(bGrid.GridPoint(points[0]))
		}
		for i := 0; i < len(points)-1; i++ {
			gp1 := bGrid.GridPoint(points[i])
			gp2 := bGrid.GridPoint(points[i+1])
			for _, p := range graph.GetLinePoints(gp1, gp2) {
				bGrid.Set(p)
			}
		}

		graph.DrawBraillePatterns(&lc.Canvas,
			canvas.Point{X: startX, Y: 0},
			bGrid.BraillePatterns(),
			lc.seriesStyle(si))
	}
}

// clipSpanX returns the run of points covering the visible horizontal span
// [0, maxX]. A segment crossing a side edge is shortened to end exactly on
// it, so a point pushed out of view (the window's buffer point during a
// slide in particular) still anchors the line to the edge instead of
// detaching it. Points must be sorted ascending by X.
func clipSpanX(pts []canvas.Float64Point, maxX float64) []canvas.Float64Point {
	lo := 0
	for lo < len(pts) && pts[lo].X < 0 {
		lo++
	}
	hi := len(pts)
	for hi > 0 && pts[hi-1].X > maxX {
		hi--
	}
	if lo >= hi {
		return nil
	}

	out := make([]canvas.Float64Point, 0, hi-lo+2)
	if lo > 0 {
		out = append(out, edgeCrossing(pts[lo-1], pts[lo], 0))
	}
	out = append(out, pts[lo:hi]...)
	if hi < len(pts) {
		out = append(out, edgeCrossing(pts[hi-1], pts[hi], maxX))
	}
	return out
}

// edgeCrossing interpolates the segment a->b at the vertical line x.
func edgeCrossing(a, b canvas.Float64Point, x float64) canvas.Float64Point {
	if b.X == a.X {
		return canvas.Float64Point{X: x, Y: b.Y}
	}
	t := (x - a.X) / (b.X - a.X)
	return canvas.Float64Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Resize updates the chart dimensions if they changed.
func (lc *LineChart) Resize(width, height int) {
	if lc.Width() != width || lc.Height() != height {
		lc.Model.Resize(width, height)
		lc.dirty = true
	}
}

func (lc *LineChart) seriesStyle(i int) lipgloss.Style {
	if i < len(lc.styles) {
		return lc.styles[i]
	}
	return seriesStyle(lc.chart, i)
}
