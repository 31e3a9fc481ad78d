package chart_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lineal-viz/lineal/internal/chart"
	"github.com/lineal-viz/lineal/internal/scene"
)

func TestEntrance_EnterLeftSlidesPaths(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	cfg.Animation = chart.AnimationEnterLeft
	ch, host := newTestChart(t, cfg, newTestStore("a"))

	anims := host.Find("paths").Animations()
	require.Len(t, anims, 1)
	require.Equal(t, "transform", anims[0].Attr)

	w, _ := ch.GraphSize()
	require.Equal(t, fmt.Sprintf("translate(%g,0)", -w), anims[0].From)
	require.Equal(t, "translate(0,0)", anims[0].To)
	require.Equal(t, cfg.AnimationProps.OnEnter.Duration, anims[0].Transition.Duration)
	require.Equal(t, chart.EasingCubicOut, anims[0].Transition.Easing)
}

func TestEntrance_AriseRevealsClip(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	cfg.Animation = chart.AnimationArise
	ch, host := newTestChart(t, cfg, newTestStore("a"))

	clipRect := findClipRect(host)
	require.NotNil(t, clipRect)

	anims := clipRect.Animations()
	require.Len(t, anims, 2)

	_, h := ch.GraphSize()
	byAttr := map[string]scene.Animation{}
	for _, a := range anims {
		byAttr[a.Attr] = a
	}
	require.Equal(t, formatFloat64(h), byAttr["y"].From)
	require.Equal(t, "0", byAttr["y"].To)
	require.Equal(t, "0", byAttr["height"].From)
	require.Equal(t, formatFloat64(h), byAttr["height"].To)
}

func TestEntrance_NoneLeavesSceneStatic(t *testing.T) {
	t.Parallel()

	_, host := newTestChart(t, chart.DefaultConfig(), newTestStore("a"))

	static := host.Walk(func(n *scene.Node) bool {
		return len(n.Animations()) == 0
	})
	require.True(t, static)
}

func TestEasingFunc(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"linear", chart.EasingCubicOut, chart.EasingCubicInOut, "unknown",
	} {
		fn := chart.EasingFunc(name)
		require.Equal(t, 0.0, fn(0), "easing %q at 0", name)
		require.Equal(t, 1.0, fn(1), "easing %q at 1", name)
	}

	// Cubic-out decelerates: past the halfway point well before half time.
	require.Greater(t, chart.EasingFunc(chart.EasingCubicOut)(0.5), 0.8)

	// Cubic-in-out is symmetric around the midpoint.
	inOut := chart.EasingFunc(chart.EasingCubicInOut)
	require.InDelta(t, 0.5, inOut(0.5), 1e-9)
	require.InDelta(t, 1-inOut(0.25), inOut(0.75), 1e-9)
}

// findClipRect locates the rect nested under the clip definition.
func findClipRect(host *scene.Node) *scene.Node {
	var rect *scene.Node
	host.Walk(func(n *scene.Node) bool {
		if n.Kind() == scene.KindRect && n.Parent() != nil && n.Parent().Kind() == scene.KindClip {
			rect = n
			return false
		}
		return true
	})
	return rect
}

func formatFloat64(v float64) string {
	return fmt.Sprintf("%g", v)
}
