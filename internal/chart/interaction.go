package chart

import (
	"strconv"

	"github.com/lineal-viz/lineal/internal/scene"
)

// HoverEnter fades every series except the hovered one to partial opacity
// with a continuous transition. Paths are matched by node id, not child
// position: empty series produce no path node, so positions can drift from
// series indexes.
func (c *Chart) HoverEnter(seriesIndex int) {
	tr := scene.Transition{
		Duration: c.cfg.Transition.OnUpdate.Duration,
		Easing:   c.cfg.Transition.OnUpdate.Easing,
	}
	hovered := "series-" + strconv.Itoa(seriesIndex)
	for _, path := range c.pathLayer.Children() {
		if path.ID() == hovered {
			continue
		}
		path.Animate("opacity", currentOpacity(path), hoverFadeOpacity, tr)
	}
}

// HoverLeave restores all series paths to full opacity.
func (c *Chart) HoverLeave() {
	tr := scene.Transition{
		Duration: c.cfg.Transition.OnUpdate.Duration,
		Easing:   c.cfg.Transition.OnUpdate.Easing,
	}
	for _, path := range c.pathLayer.Children() {
		path.Animate("opacity", currentOpacity(path), "1", tr)
	}
}

func currentOpacity(n *scene.Node) string {
	if o := n.Attr("opacity"); o != "" {
		return o
	}
	return "1"
}

// SeriesNode returns the path node for a series index, or nil.
func (c *Chart) SeriesNode(index int) *scene.Node {
	return c.pathLayer.Find("series-" + strconv.Itoa(index))
}
