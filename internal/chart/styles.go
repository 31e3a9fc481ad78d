package chart

// Axis and annotation colors.
const (
	axisColor    = "#6b7280"
	labelColor   = "#9ca3af"
	titleColor   = "#e5e7eb"
	captionColor = "#9ca3af"
	tooltipColor = "#d1d5db"
)

const (
	seriesStrokeWidth = "1.5"

	// Opacity other series fade to while one is hovered.
	hoverFadeOpacity = "0.25"
)

// autoPalette is the categorical palette used when no explicit color list
// is configured. Colors are keyed by series index.
var autoPalette = []string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ac",
}

// seriesColor assigns the stroke color for a series index: the configured
// list cyclically when present, otherwise the auto palette.
func (c *Chart) seriesColor(index int) string {
	if len(c.cfg.Colors) > 0 {
		return c.cfg.Colors[index%len(c.cfg.Colors)]
	}
	return autoPalette[index%len(autoPalette)]
}
