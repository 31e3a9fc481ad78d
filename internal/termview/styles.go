package termview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lineal-viz/lineal/internal/chart"
)

var (
	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // gray

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // light gray

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// seriesStyle builds the terminal style for a series from the chart's
// assigned stroke color.
func seriesStyle(ch *chart.Chart, index int) lipgloss.Style {
	color := "4"
	if node := ch.SeriesNode(index); node != nil {
		if stroke := node.Attr("stroke"); stroke != "" {
			color = stroke
		}
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
