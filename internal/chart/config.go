package chart

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Update modes.
const (
	ModeNameWindow  = "window"
	ModeNameAdd     = "add"
	ModeNameDynamic = "dynamic"
)

// Entrance animations.
const (
	AnimationEnterLeft = "enterLeft"
	AnimationArise     = "arise"
	AnimationNone      = ""
)

// Interpolation styles for the path generator.
const (
	InterpolationLinear   = "linear"
	InterpolationMonotone = "monotone"
)

// Canvas size constraints.
const (
	MinCanvasWidth  = 120.0
	MinCanvasHeight = 80.0

	DefaultCanvasWidth  = 640.0
	DefaultCanvasHeight = 360.0
)

// Default transition timings.
const (
	DefaultEnterDuration  = 600 * time.Millisecond
	DefaultUpdateDuration = 300 * time.Millisecond
	DefaultExitDuration   = 200 * time.Millisecond
)

// Margin is the space between the canvas edge and the plot area.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// CanvasSize is the outer pixel size of the chart.
type CanvasSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingProps describes one transition: how long and with which easing.
type TimingProps struct {
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing"`
}

// TransitionSet groups the enter/update/exit timings.
type TransitionSet struct {
	OnEnter  TimingProps `yaml:"onEnter"`
	OnUpdate TimingProps `yaml:"onUpdate"`
	OnExit   TimingProps `yaml:"onExit"`
}

// BrushProps sizes the optional brush sub-chart.
type BrushProps struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Margin Margin  `yaml:"margin"`
}

// ListenerProps toggles reactive wiring.
type ListenerProps struct {
	// Chart enables reactions to configuration-field changes
	// (axis labels, domains).
	Chart bool `yaml:"chart"`

	// Data enables reactions to series-data changes.
	Data bool `yaml:"data"`
}

// Config is the full display/behavior parameter set for one chart.
//
// It is pure data: construct it, normalize it, hand it to New. After render
// only the axis labels and domains have defined reactive behavior, through
// the chart's setter methods.
type Config struct {
	Margin Margin     `yaml:"margin"`
	Canvas CanvasSize `yaml:"canvas"`

	Title   string   `yaml:"title"`
	Caption string   `yaml:"caption"`
	Legend  []string `yaml:"legend"`
	XLabel  string   `yaml:"xLabel"`
	YLabel  string   `yaml:"yLabel"`

	XDomain Domain `yaml:"xDomain"`
	YDomain Domain `yaml:"yDomain"`

	// Colors assigns stroke colors by series index modulo the list length.
	// Empty means the built-in categorical palette.
	Colors []string `yaml:"colors"`

	Interpolation string `yaml:"interpolation"`

	// Animation selects the one-shot entrance animation.
	Animation      string        `yaml:"animation"`
	AnimationProps TransitionSet `yaml:"animationProps"`

	// Transition times the update/exit transitions routed through the
	// update engine and the data cursor.
	Transition TransitionSet `yaml:"transition"`

	// Mode selects the update strategy, fixed for the chart's lifetime.
	Mode string `yaml:"mode"`

	Brush      bool       `yaml:"brush"`
	BrushProps BrushProps `yaml:"brushProps"`

	Listeners  ListenerProps `yaml:"listeners"`
	DataCursor bool          `yaml:"dataCursor"`
}

// DefaultConfig returns a config with sensible defaults for a streaming
// line chart.
func DefaultConfig() Config {
	return Config{
		Margin: Margin{Top: 24, Right: 72, Bottom: 36, Left: 48},
		Canvas: CanvasSize{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		AnimationProps: TransitionSet{
			OnEnter:  TimingProps{Duration: DefaultEnterDuration, Easing: EasingCubicOut},
			OnUpdate: TimingProps{Duration: DefaultUpdateDuration, Easing: EasingLinear},
			OnExit:   TimingProps{Duration: DefaultExitDuration, Easing: EasingCubicOut},
		},
		Transition: TransitionSet{
			OnEnter:  TimingProps{Duration: DefaultEnterDuration, Easing: EasingCubicOut},
			OnUpdate: TimingProps{Duration: DefaultUpdateDuration, Easing: EasingLinear},
			OnExit:   TimingProps{Duration: DefaultExitDuration, Easing: EasingCubicOut},
		},
		Interpolation: InterpolationLinear,
		Mode:          ModeNameAdd,
		Listeners:     ListenerProps{Chart: true, Data: true},
	}
}

// normalize clamps and fills in config values so rendering never has to
// re-check them.
func (c *Config) normalize() {
	if c.Canvas.Width < MinCanvasWidth {
		c.Canvas.Width = DefaultCanvasWidth
	}
	if c.Canvas.Height < MinCanvasHeight {
		c.Canvas.Height = DefaultCanvasHeight
	}

	if c.Interpolation != InterpolationLinear && c.Interpolation != InterpolationMonotone {
		c.Interpolation = InterpolationLinear
	}

	normalizeTimings(&c.AnimationProps)
	normalizeTimings(&c.Transition)

	if c.Brush {
		if c.BrushProps.Width <= 0 {
			c.BrushProps.Width = c.Canvas.Width - c.Margin.Left - c.Margin.Right
		}
		if c.BrushProps.Height <= 0 {
			c.BrushProps.Height = 40
		}
	}
}

func normalizeTimings(ts *TransitionSet) {
	if ts.OnEnter.Duration <= 0 {
		ts.OnEnter.Duration = DefaultEnterDuration
	}
	if ts.OnUpdate.Duration <= 0 {
		ts.OnUpdate.Duration = DefaultUpdateDuration
	}
	if ts.OnExit.Duration <= 0 {
		ts.OnExit.Duration = DefaultExitDuration
	}
	for _, tp := range []*TimingProps{&ts.OnEnter, &ts.OnUpdate, &ts.OnExit} {
		if !validEasing(tp.Easing) {
			tp.Easing = EasingLinear
		}
	}
}

// Bound is one end of a configured axis domain: either a literal value or
// a marker resolved from the data ("min"/"max").
type Bound struct {
	Auto  bool
	Value float64
}

// AutoBound returns a bound resolved from the data at derivation time.
func AutoBound() Bound { return Bound{Auto: true} }

// ValueBound returns a literal bound.
func ValueBound(v float64) Bound { return Bound{Value: v} }

// Domain is a configured axis domain.
//
// Fewer than two entries means both ends are computed from the data. With
// two entries, each may be a literal or an auto marker ("min"/"max" in the
// YAML form), mixing as in [5, max] or [min, 10].
type Domain []Bound

// FixedDomain returns a fully literal domain.
func FixedDomain(lo, hi float64) Domain {
	return Domain{ValueBound(lo), ValueBound(hi)}
}

// resolve applies the domain resolution policy against the data extent.
func (d Domain) resolve(dataMin, dataMax float64) (float64, float64) {
	if len(d) < 2 {
		return dataMin, dataMax
	}
	lo, hi := d[0].Value, d[1].Value
	if d[0].Auto {
		lo = dataMin
	}
	if d[1].Auto {
		hi = dataMax
	}
	return lo, hi
}

// UnmarshalYAML accepts entries that are numbers or the strings
// "min"/"max", e.g. `xDomain: [0, max]`. Numeric scalars also decode into
// a string target, so the branch is picked by the node's tag.
func (b *Bound) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!str" {
		switch value.Value {
		case "min", "max":
			*b = AutoBound()
			return nil
		default:
			return fmt.Errorf("config: invalid domain bound %q", value.Value)
		}
	}
	var v float64
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("config: invalid domain bound: %w", err)
	}
	*b = ValueBound(v)
	return nil
}

// MarshalYAML renders auto bounds back as "min"/"max" by position and
// literal bounds as numbers.
func (d Domain) MarshalYAML() (any, error) {
	out := make([]any, len(d))
	for i, b := range d {
		switch {
		case b.Auto && i == 0:
			out[i] = "min"
		case b.Auto:
			out[i] = "max"
		default:
			out[i] = b.Value
		}
	}
	return out, nil
}
