package termview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/lineal-viz/lineal/internal/chart"
	"github.com/lineal-viz/lineal/internal/observability"
)

const (
	frameInterval = 16 * time.Millisecond

	// Redraws are coalesced so bursty data feeds don't rebuild the view
	// on every event.
	maxRedrawsPerSecond = 30
)

// FrameMsg advances animations.
type FrameMsg time.Time

// AppendMsg appends one point to a series on the UI loop, so the chart's
// update engine runs between frames, never concurrently with drawing.
type AppendMsg struct {
	Series string
	Point  chart.Point
}

// Model is the bubbletea program state for a live chart view.
type Model struct {
	chart   *chart.Chart
	lc      *LineChart
	limiter *rate.Limiter
	logger  *observability.CoreLogger

	width    int
	height   int
	quitting bool
}

func NewModel(ch *chart.Chart, logger *observability.CoreLogger) *Model {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	return &Model{
		chart:   ch,
		lc:      NewLineChart(ch, 80, 20),
		limiter: rate.NewLimiter(rate.Limit(maxRedrawsPerSecond), 1),
		logger:  logger,
	}
}

func (m *Model) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lc.Resize(msg.Width, max(msg.Height-2, 5))
		return m, nil

	case AppendMsg:
		if err := m.chart.Store().Append(msg.Series, msg.Point); err != nil {
			m.logger.CaptureError(err)
			return m, nil
		}
		m.lc.Sync()
		if m.chart.Mode() == chart.ModeWindow {
			if offset, ok := slideOffset(m.chart); ok {
				m.lc.BeginSlide(offset, time.Now())
			}
		}
		return m, nil

	case FrameMsg:
		m.lc.Advance(time.Time(msg))
		if m.lc.Dirty() && m.limiter.Allow() {
			m.lc.Draw()
		}
		return m, frameCmd()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.chart.Config().Title
	if title == "" {
		title = "lineal"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		m.lc.View(),
		statusStyle.Render("q: quit"),
	)
}

// slideOffset derives the window-slide starting offset in data units: the
// negative spacing between the two most recent points of the reference
// series.
func slideOffset(ch *chart.Chart) (float64, bool) {
	first, ok := ch.Store().First()
	if !ok || len(first.Points) < 2 {
		return 0, false
	}
	last := len(first.Points) - 1
	return -(first.Points[last].X - first.Points[last-1].X), true
}
