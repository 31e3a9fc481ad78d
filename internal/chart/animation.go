package chart

import (
	"fmt"

	"github.com/lineal-viz/lineal/internal/scene"
)

// Easing names accepted in transition configuration.
const (
	EasingLinear     = "linear"
	EasingCubicOut   = "cubic-out"
	EasingCubicInOut = "cubic-in-out"
)

func validEasing(name string) bool {
	switch name {
	case EasingLinear, EasingCubicOut, EasingCubicInOut:
		return true
	}
	return false
}

// EasingFunc returns the progress curve for an easing name. Unknown names
// fall back to linear. Hosts that animate frame-by-frame (the terminal
// viewer) evaluate these; the SVG host maps names to spline control points.
func EasingFunc(name string) func(float64) float64 {
	switch name {
	case EasingCubicOut:
		return easeOutCubic
	case EasingCubicInOut:
		return easeInOutCubic
	default:
		return easeLinear
	}
}

func easeLinear(t float64) float64 { return t }

// easeOutCubic provides smooth deceleration.
func easeOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = 2*t - 2
	return 0.5*t*t*t + 1
}

// animateEntrance applies the configured one-shot entrance animation after
// the first plot. Subsequent data updates use Transition.OnUpdate timings
// exclusively, routed through the update engine.
func (c *Chart) animateEntrance() {
	if c.entered {
		return
	}
	c.entered = true

	tr := scene.Transition{
		Duration: c.cfg.AnimationProps.OnEnter.Duration,
		Easing:   c.cfg.AnimationProps.OnEnter.Easing,
	}

	switch c.cfg.Animation {
	case AnimationEnterLeft:
		// Slide the data paths in from the domain's left edge.
		from := fmt.Sprintf("translate(%g,0)", -c.derived.graphW)
		c.pathLayer.Animate("transform", from, "translate(0,0)", tr)

	case AnimationArise:
		// Grow vertically from a flattened baseline by revealing the
		// clip rect upward.
		c.clipRect.Animate("y", formatNum(c.derived.graphH), "0", tr)
		c.clipRect.Animate("height", "0", formatNum(c.derived.graphH), tr)

	case AnimationNone:

	default:
		c.logger.Warn("chart: unrecognized entrance animation", "animation", c.cfg.Animation)
	}
}
