package chart

import (
	"fmt"

	"github.com/lineal-viz/lineal/internal/scene"
)

// UpdateMode is the update strategy, selected once at construction and
// fixed for the chart's lifetime.
type UpdateMode int

const (
	// ModeUnsupported registers no update handler; data-change events are
	// inert for the instance. This models the unrecognized-mode case
	// explicitly instead of as a silent fallback.
	ModeUnsupported UpdateMode = iota

	// ModeAdd extends paths with new points; the x-domain may grow. No
	// transform compensation.
	ModeAdd

	// ModeDynamic mutates existing points in place; geometry updates and
	// the domain may shift, but no sliding transform is used.
	ModeDynamic

	// ModeWindow presents a sliding fixed-width trailing slice of a
	// growing series, with one-point buffering for visual continuity.
	ModeWindow
)

func (m UpdateMode) String() string {
	switch m {
	case ModeAdd:
		return ModeNameAdd
	case ModeDynamic:
		return ModeNameDynamic
	case ModeWindow:
		return ModeNameWindow
	default:
		return "unsupported"
	}
}

// ParseUpdateMode maps a configured mode name to its variant. Unrecognized
// names map to ModeUnsupported.
func ParseUpdateMode(name string) UpdateMode {
	switch name {
	case ModeNameAdd:
		return ModeAdd
	case ModeNameDynamic:
		return ModeDynamic
	case ModeNameWindow:
		return ModeWindow
	default:
		return ModeUnsupported
	}
}

// updateFunc reconciles the rendered chart with one data-change event.
type updateFunc func(SeriesEvent)

// makeUpdate returns the per-mode update function. The engine assumes each
// call runs to completion before the next event is dispatched; overlapping
// updates simply re-issue new transition targets.
func (c *Chart) makeUpdate(mode UpdateMode) updateFunc {
	switch mode {
	case ModeAdd:
		return c.applyAdd
	case ModeDynamic:
		return c.applyDynamic
	case ModeWindow:
		return c.applyWindow
	default:
		c.logger.Warn(
			"chart: unrecognized update mode, data changes will be ignored",
			"mode", c.cfg.Mode,
		)
		return nil
	}
}

// applyAdd handles appended points: the domain is re-resolved (growing
// when the configured bounds are auto), paths are redrawn, and the legend
// tracks the new right edge.
func (c *Chart) applyAdd(SeriesEvent) {
	c.deriveScales(nil)
	c.renderAxisNodes()
	c.plot()
	c.updateLegend()
}

// applyDynamic handles in-place point mutation: same reconciliation as
// add, without domain growth semantics or transforms.
func (c *Chart) applyDynamic(SeriesEvent) {
	c.deriveScales(nil)
	c.renderAxisNodes()
	c.plot()
	c.updateLegend()
}

// applyWindow handles the sliding viewport: the y-domain is recomputed
// from scratch (honoring configured overrides), the x-domain is reset to
// [points[1].X, points[last].X] with the first point kept as a one-point
// buffer, and the redrawn paths get a slide transform that animates back
// to zero offset.
func (c *Chart) applyWindow(SeriesEvent) {
	ref, ok := c.store.First()
	if !ok {
		return
	}

	dom, offset, ok := windowSlide(ref.Points)
	if !ok {
		// Too few points for a slide computation; replot without one.
		c.logger.Warn(fmt.Sprintf(
			"chart: window update needs at least 2 points in series %q, replotting without slide",
			ref.Label,
		))
		c.onDomainChanged()
		return
	}

	c.deriveScales(&dom)
	c.renderAxisNodes()
	c.plot()

	span := dom[1] - dom[0]
	if span > 0 {
		offsetPx := offset * c.derived.graphW / span
		c.pathLayer.Animate(
			"transform",
			fmt.Sprintf("translate(%g,0)", offsetPx),
			"translate(0,0)",
			scene.Transition{
				Duration: c.cfg.Transition.OnUpdate.Duration,
				Easing:   c.cfg.Transition.OnUpdate.Easing,
			},
		)
	}

	c.updateLegend()
}

// windowSlide computes the visible domain and slide offset for a window
// update over the reference series.
//
// The first point is a one-point buffer excluded from the visible domain,
// so the window's left edge aligns with the viewport while the old
// leftmost point is still being evicted. The offset is the negative
// spacing between the two most recent points, in data units.
//
// ok is false with fewer than 2 points; callers must not attempt a slide.
func windowSlide(points []Point) (domain [2]float64, offset float64, ok bool) {
	if len(points) < 2 {
		return domain, 0, false
	}
	last := len(points) - 1
	domain = [2]float64{points[1].X, points[last].X}
	offset = -(points[last].X - points[last-1].X)
	return domain, offset, true
}
