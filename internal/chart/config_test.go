package chart_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/lineal-viz/lineal/internal/chart"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := chart.LoadConfig(fs, "/nope.yaml")
	require.NoError(t, err)
	require.Equal(t, chart.DefaultCanvasWidth, cfg.Canvas.Width)
	require.Equal(t, chart.ModeNameAdd, cfg.Mode)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/chart.yaml", []byte(`
title: throughput
mode: window
interpolation: monotone
xDomain: [0, max]
yDomain: [min, 100]
canvas:
  width: 800
  height: 400
transition:
  onUpdate:
    duration: 150ms
    easing: cubic-out
`), 0o644))

	cfg, err := chart.LoadConfig(fs, "/chart.yaml")
	require.NoError(t, err)

	require.Equal(t, "throughput", cfg.Title)
	require.Equal(t, chart.ModeNameWindow, cfg.Mode)
	require.Equal(t, chart.InterpolationMonotone, cfg.Interpolation)
	require.Equal(t, 800.0, cfg.Canvas.Width)
	require.Equal(t, 150*time.Millisecond, cfg.Transition.OnUpdate.Duration)
	require.Equal(t, chart.EasingCubicOut, cfg.Transition.OnUpdate.Easing)

	// Untouched fields keep their defaults (normalize fills the timings).
	require.Equal(t, chart.DefaultEnterDuration, cfg.Transition.OnEnter.Duration)

	require.Len(t, cfg.XDomain, 2)
	require.Equal(t, chart.ValueBound(0), cfg.XDomain[0])
	require.Equal(t, chart.AutoBound(), cfg.XDomain[1])
	require.Equal(t, chart.AutoBound(), cfg.YDomain[0])
	require.Equal(t, chart.ValueBound(100), cfg.YDomain[1])
}

func TestLoadConfig_NumericDomainBounds(t *testing.T) {
	t.Parallel()

	// Numeric scalars also decode into a string target in yaml.v3, so
	// literal bounds must not be mistaken for min/max markers.
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/chart.yaml", []byte(`
xDomain: [0, 10]
yDomain: [-2.5, max]
`), 0o644))

	cfg, err := chart.LoadConfig(fs, "/chart.yaml")
	require.NoError(t, err)
	require.Equal(t, chart.FixedDomain(0, 10), cfg.XDomain)
	require.Equal(t, chart.Domain{chart.ValueBound(-2.5), chart.AutoBound()}, cfg.YDomain)
}

func TestLoadConfig_RejectsBadBound(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/chart.yaml",
		[]byte("xDomain: [0, everything]\n"), 0o644))

	_, err := chart.LoadConfig(fs, "/chart.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid domain bound")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	cfg := chart.DefaultConfig()
	cfg.Title = "saved"
	cfg.Mode = chart.ModeNameDynamic
	cfg.XDomain = chart.Domain{chart.AutoBound(), chart.ValueBound(50)}
	cfg.Legend = []string{"a", "b"}

	require.NoError(t, chart.SaveConfig(fs, "/out/chart.yaml", cfg))

	loaded, err := chart.LoadConfig(fs, "/out/chart.yaml")
	require.NoError(t, err)
	require.Equal(t, "saved", loaded.Title)
	require.Equal(t, chart.ModeNameDynamic, loaded.Mode)
	require.Equal(t, cfg.XDomain, loaded.XDomain)
	require.Equal(t, []string{"a", "b"}, loaded.Legend)

	// Atomic write leaves no temp file behind.
	exists, err := afero.Exists(fs, "/out/chart.yaml.tmp")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestConfigNormalization_ThroughNew(t *testing.T) {
	t.Parallel()

	cfg := chart.Config{
		Canvas:        chart.CanvasSize{Width: 10, Height: 10}, // below minimum
		Interpolation: "bezier",                                // unknown
		Mode:          chart.ModeNameAdd,
		Listeners:     chart.ListenerProps{Chart: true, Data: true},
	}
	ch, _ := newTestChart(t, cfg, newTestStore("a"))

	got := ch.Config()
	require.Equal(t, chart.DefaultCanvasWidth, got.Canvas.Width)
	require.Equal(t, chart.DefaultCanvasHeight, got.Canvas.Height)
	require.Equal(t, chart.InterpolationLinear, got.Interpolation)
	require.Equal(t, chart.DefaultUpdateDuration, got.Transition.OnUpdate.Duration)
	require.Equal(t, chart.EasingLinear, got.Transition.OnUpdate.Easing)
}
