package scene

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// kindElements maps node kinds to SVG element names.
var kindElements = map[Kind]string{
	KindGroup:  "g",
	KindClip:   "clipPath",
	KindRect:   "rect",
	KindLine:   "line",
	KindPath:   "path",
	KindCircle: "circle",
	KindText:   "text",
}

// keySplines for SMIL spline interpolation, per easing name.
var easingSplines = map[string]string{
	"cubic-out":    "0.215 0.61 0.355 1",
	"cubic-in-out": "0.645 0.045 0.355 1",
}

// RenderSVG serializes a scene to an SVG document of the given pixel size.
//
// Recorded animations become SMIL animate/animateTransform elements so the
// rendering host performs the time-based transitions.
func RenderSVG(w io.Writer, root *Node, width, height int) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height); err != nil {
		return err
	}
	if err := writeNode(w, root, 1); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// WriteSVGFile writes the rendered scene atomically via temp file + rename.
func WriteSVGFile(fs afero.Fs, path string, root *Node, width, height int) error {
	var sb strings.Builder
	if err := RenderSVG(&sb, root, width, height); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("svg: failed to write temp file: %v", err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("svg: failed to rename temp file: %v", err)
	}
	return nil
}

func writeNode(w io.Writer, n *Node, depth int) error {
	elem, ok := kindElements[n.kind]
	if !ok {
		return fmt.Errorf("svg: unknown node kind %d", n.kind)
	}

	indent := strings.Repeat("  ", depth)
	open := indent + "<" + elem
	if n.id != "" {
		open += fmt.Sprintf(" id=%q", escape(n.id))
	}

	// Deterministic attribute order keeps output stable for tests and diffs.
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		open += fmt.Sprintf(" %s=%q", k, escape(n.attrs[k]))
	}

	empty := len(n.children) == 0 && len(n.animations) == 0 && n.text == ""
	if empty {
		_, err := io.WriteString(w, open+"/>\n")
		return err
	}

	if _, err := io.WriteString(w, open+">"); err != nil {
		return err
	}
	if n.text != "" {
		if _, err := io.WriteString(w, escape(n.text)); err != nil {
			return err
		}
	}
	if len(n.children) > 0 || len(n.animations) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		for _, a := range n.animations {
			if err := writeAnimation(w, a, depth+1); err != nil {
				return err
			}
		}
		for _, c := range n.children {
			if err := writeNode(w, c, depth+1); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>\n", elem)
	return err
}

func writeAnimation(w io.Writer, a Animation, depth int) error {
	indent := strings.Repeat("  ", depth)
	dur := fmt.Sprintf("%gs", a.Transition.Duration.Seconds())

	calc := ""
	if splines, ok := easingSplines[a.Transition.Easing]; ok {
		calc = fmt.Sprintf(
			" calcMode=\"spline\" keyTimes=\"0;1\" keySplines=%q", splines)
	}

	if a.Attr == "transform" {
		_, err := fmt.Fprintf(w,
			"%s<animateTransform attributeName=\"transform\" type=\"translate\" from=%q to=%q dur=%q fill=\"freeze\"%s/>\n",
			indent, escape(translateArgs(a.From)), escape(translateArgs(a.To)), dur, calc)
		return err
	}
	_, err := fmt.Fprintf(w,
		"%s<animate attributeName=%q from=%q to=%q dur=%q fill=\"freeze\"%s/>\n",
		indent, a.Attr, escape(a.From), escape(a.To), dur, calc)
	return err
}

// translateArgs converts "translate(x,y)" to the "x y" form that
// animateTransform expects. Other values pass through unchanged.
func translateArgs(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return s
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "translate("), ")")
	return strings.TrimSpace(strings.ReplaceAll(inner, ",", " "))
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
