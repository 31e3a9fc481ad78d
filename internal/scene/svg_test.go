package scene_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/lineal-viz/lineal/internal/scene"
)

func renderString(t *testing.T, root *scene.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, scene.RenderSVG(&sb, root, 100, 50))
	return sb.String()
}

func TestRenderSVG_Document(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	line := root.Append(scene.KindLine, "baseline")
	line.SetAttrs(map[string]string{"x1": "0", "y1": "10", "x2": "90", "y2": "10"})

	out := renderString(t, root)
	require.Contains(t, out,
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">`)
	require.Contains(t, out, `<line id="baseline" x1="0" x2="90" y1="10" y2="10"/>`)
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestRenderSVG_AttributeOrderIsSorted(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	r := root.Append(scene.KindRect, "r")
	r.SetAttr("width", "5")
	r.SetAttr("fill", "red")
	r.SetAttr("height", "6")

	out := renderString(t, root)
	require.Contains(t, out, `<rect id="r" fill="red" height="6" width="5"/>`)
}

func TestRenderSVG_TextAndEscaping(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	txt := root.Append(scene.KindText, "label")
	txt.SetAttr("fill", `a"b`)
	txt.SetText("x < 5 & y > 2")

	out := renderString(t, root)
	require.Contains(t, out, `fill="a&quot;b"`)
	require.Contains(t, out, ">x &lt; 5 &amp; y &gt; 2</text>")
}

func TestRenderSVG_AnimateElement(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	c := root.Append(scene.KindCircle, "dot")
	c.Animate("opacity", "1", "0", scene.Transition{
		Duration: 200 * time.Millisecond,
		Easing:   "cubic-out",
	})

	out := renderString(t, root)
	require.Contains(t, out,
		`<animate attributeName="opacity" from="1" to="0" dur="0.2s" fill="freeze" calcMode="spline" keyTimes="0;1" keySplines="0.215 0.61 0.355 1"/>`)
}

func TestRenderSVG_AnimateTransformUsesBareArgs(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	g := root.Group("paths")
	g.Animate("transform", "translate(-40,0)", "translate(0,0)", scene.Transition{
		Duration: 300 * time.Millisecond,
		Easing:   "linear",
	})

	out := renderString(t, root)
	require.Contains(t, out,
		`<animateTransform attributeName="transform" type="translate" from="-40 0" to="0 0" dur="0.3s" fill="freeze"/>`)
	// Linear easing stays on the default calc mode.
	require.NotContains(t, out, "keySplines")
}

func TestRenderSVG_ClipPathElement(t *testing.T) {
	t.Parallel()

	root := scene.NewRoot("host")
	clip := root.Append(scene.KindClip, "plot-clip-1")
	rect := clip.Append(scene.KindRect, "plot-clip-1-rect")
	rect.SetAttrs(map[string]string{"width": "90", "height": "40"})

	out := renderString(t, root)
	require.Contains(t, out, `<clipPath id="plot-clip-1">`)
	require.Contains(t, out, `<rect id="plot-clip-1-rect" height="40" width="90"/>`)
}

func TestWriteSVGFile_Atomic(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := scene.NewRoot("host")
	root.Append(scene.KindRect, "r").SetAttr("width", "1")

	require.NoError(t, scene.WriteSVGFile(fs, "/out/chart.svg", root, 100, 50))

	data, err := afero.ReadFile(fs, "/out/chart.svg")
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg ")

	exists, err := afero.Exists(fs, "/out/chart.svg.tmp")
	require.NoError(t, err)
	require.False(t, exists)
}
