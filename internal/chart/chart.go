// Package chart renders animated, interactive time-series line charts into
// a scene graph and keeps them synchronized with an observable series
// store.
//
// A chart is composed of fixed layers built in pipeline order:
// canvas, axes, data paths, annotations, listeners, interaction, animation.
// Each layer writes into the shared scene and the shared derived state.
package chart

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/lineal-viz/lineal/internal/observability"
	"github.com/lineal-viz/lineal/internal/scene"
)

// clipCounter makes clip-path identifiers unique across chart instances
// sharing one document.
var clipCounter atomic.Int64

// derivedState is the cache of values computed from Config + SeriesStore.
// It is recomputed by deriveScales, never patched incrementally, and owned
// exclusively by one chart instance.
type derivedState struct {
	graphW  float64
	graphH  float64
	clipID  string
	xScale  LinearScale
	yScale  LinearScale
	xDomain [2]float64
	yDomain [2]float64
	gen     *pathGenerator
}

// Chart is one rendered chart instance attached to a host scene node.
//
// All methods must be called from the host's event loop; a chart performs
// no locking of its own state.
type Chart struct {
	cfg    Config
	store  *SeriesStore
	logger *observability.CoreLogger

	host        *scene.Node
	root        *scene.Node
	plotArea    *scene.Node
	clipRect    *scene.Node
	axisLayer   *scene.Node
	pathLayer   *scene.Node
	legendLayer *scene.Node
	annotLayer  *scene.Node
	cursorLayer *scene.Node

	derived derivedState
	mode    UpdateMode
	update  updateFunc
	brush   *Brush
	sub     *Subscription
	entered bool
	closed  bool
}

// New renders a chart under host and wires its listeners.
//
// The store must contain at least one series; rendering an empty store is
// an explicit failure rather than a blank chart.
func New(
	host *scene.Node,
	cfg Config,
	store *SeriesStore,
	logger *observability.CoreLogger,
) (*Chart, error) {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	if store == nil || store.Len() == 0 {
		return nil, errors.New("chart: series store is empty at render time")
	}
	cfg.normalize()

	c := &Chart{
		cfg:    cfg,
		store:  store,
		logger: logger,
		host:   host,
	}

	// The fixed render pipeline. Each stage builds on the previous one.
	c.renderCanvas()
	c.renderAxes()
	c.renderData()
	c.renderAnnotations()
	c.bindListeners()
	c.bindInteraction()
	c.animateEntrance()

	return c, nil
}

// renderCanvas allocates the drawing surface: the chart container, the
// margin-translated plot area, and the clipped viewport for data paths.
func (c *Chart) renderCanvas() {
	m := c.cfg.Margin
	c.derived.graphW = c.cfg.Canvas.Width - m.Left - m.Right
	c.derived.graphH = c.cfg.Canvas.Height - m.Top - m.Bottom
	c.derived.clipID = fmt.Sprintf("plot-clip-%d", clipCounter.Add(1))

	c.root = c.host.Group("chart")
	c.root.SetAttrs(map[string]string{
		"width":  formatNum(c.cfg.Canvas.Width),
		"height": formatNum(c.cfg.Canvas.Height),
	})

	c.plotArea = c.root.Group("plot-area")
	c.plotArea.SetAttr("transform", fmt.Sprintf("translate(%g,%g)", m.Left, m.Top))

	clip := c.plotArea.Append(scene.KindClip, c.derived.clipID)
	c.clipRect = clip.Append(scene.KindRect, c.derived.clipID+"-rect")
	c.clipRect.SetAttrs(map[string]string{
		"x":      "0",
		"y":      "0",
		"width":  formatNum(c.derived.graphW),
		"height": formatNum(c.derived.graphH),
	})

	c.axisLayer = c.plotArea.Group("axes")

	viewport := c.plotArea.Group("viewport")
	viewport.SetAttr("clip-path", "url(#"+c.derived.clipID+")")
	c.pathLayer = viewport.Group("paths")

	c.legendLayer = c.plotArea.Group("legend")
	c.cursorLayer = c.plotArea.Group("cursor")
	c.annotLayer = c.root.Group("annotations")
}

// bindListeners wires data-change notifications to the update engine.
func (c *Chart) bindListeners() {
	if !c.cfg.Listeners.Data {
		return
	}
	c.sub = c.store.Subscribe(func(ev SeriesEvent) {
		if c.closed {
			return
		}
		// Unsupported mode registered no handler: data changes are
		// deliberately inert for this instance.
		if c.update == nil {
			return
		}
		c.update(ev)
	})
}

// bindInteraction attaches the optional brush and data cursor.
func (c *Chart) bindInteraction() {
	if c.cfg.Brush {
		c.renderBrush()
	}
	// Hover and cursor react to pointer events delivered by the host via
	// HoverEnter/HoverLeave/PointerMove/PointerLeave.
}

// onDomainChanged runs the fixed reaction order for a domain change:
// axis refresh, then path redraw, then legend reposition.
func (c *Chart) onDomainChanged() {
	c.deriveScales(nil)
	c.renderAxisNodes()
	c.plot()
	c.updateLegend()
}

// SetXLabel updates the x-axis label text at runtime. With chart listeners
// disabled the call is discarded entirely, so the stored configuration
// cannot leak into a later re-derivation.
func (c *Chart) SetXLabel(label string) {
	if !c.cfg.Listeners.Chart {
		return
	}
	c.cfg.XLabel = label
	c.renderAxisNodes()
}

// SetYLabel updates the y-axis label text at runtime.
func (c *Chart) SetYLabel(label string) {
	if !c.cfg.Listeners.Chart {
		return
	}
	c.cfg.YLabel = label
	c.renderAxisNodes()
}

// SetXDomain overwrites the configured x domain and runs the domain-change
// pipeline. Brush selections and programmatic changes both land here.
func (c *Chart) SetXDomain(d Domain) {
	if !c.cfg.Listeners.Chart {
		return
	}
	c.cfg.XDomain = d
	c.onDomainChanged()
}

// SetYDomain overwrites the configured y domain and runs the domain-change
// pipeline.
func (c *Chart) SetYDomain(d Domain) {
	if !c.cfg.Listeners.Chart {
		return
	}
	c.cfg.YDomain = d
	c.onDomainChanged()
}

// Close releases the chart: the store subscription is removed and the
// rendered fragment is detached from the host.
func (c *Chart) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.sub.Unsubscribe()
	c.root.Remove()
}

// Root returns the chart's top-level scene node.
func (c *Chart) Root() *scene.Node { return c.root }

// Config returns a copy of the chart's (normalized) configuration.
func (c *Chart) Config() Config { return c.cfg }

// Mode returns the update mode selected at construction.
func (c *Chart) Mode() UpdateMode { return c.mode }

// GraphSize returns the plot-area pixel dimensions.
func (c *Chart) GraphSize() (w, h float64) {
	return c.derived.graphW, c.derived.graphH
}

// XScale returns the current x scale.
func (c *Chart) XScale() LinearScale { return c.derived.xScale }

// YScale returns the current y scale.
func (c *Chart) YScale() LinearScale { return c.derived.yScale }

// XDomain returns the current resolved x domain.
func (c *Chart) XDomain() [2]float64 { return c.derived.xDomain }

// YDomain returns the current resolved y domain.
func (c *Chart) YDomain() [2]float64 { return c.derived.yDomain }

// Store returns the chart's series store.
func (c *Chart) Store() *SeriesStore { return c.store }

// Brush returns the brush widget, or nil when not configured.
func (c *Chart) Brush() *Brush { return c.brush }

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
