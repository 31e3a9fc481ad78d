// Command lineal renders a live demo chart: synthetic series stream into a
// series store, the chart reconciles incrementally, and the result is shown
// in the terminal and/or written as an SVG snapshot.
package main

import (
	"context"
	"flag"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/lineal-viz/lineal/internal/chart"
	"github.com/lineal-viz/lineal/internal/observability"
	"github.com/lineal-viz/lineal/internal/scene"
	"github.com/lineal-viz/lineal/internal/termview"
)

func main() {
	var (
		configPath = flag.String("config", "", "chart config YAML (optional)")
		mode       = flag.String("mode", chart.ModeNameWindow, "update mode: window, add, dynamic")
		svgOut     = flag.String("svg", "", "write an SVG snapshot to this path on exit")
		tui        = flag.Bool("tui", true, "render live in the terminal")
		points     = flag.Int("points", 120, "number of points to stream")
		interval   = flag.Duration("interval", 250*time.Millisecond, "streaming interval")
	)
	flag.Parse()

	logger := observability.NewCoreLogger(
		slog.New(slog.NewTextHandler(os.Stderr, nil)),
		&observability.CoreLoggerParams{
			Sentry: observability.NewSentryClient(observability.SentryParams{
				DSN: os.Getenv("LINEAL_SENTRY_DSN"),
			}),
		},
	)

	if err := run(*configPath, *mode, *svgOut, *tui, *points, *interval, logger); err != nil {
		logger.CaptureError(err)
		os.Exit(1)
	}
}

func run(
	configPath, mode, svgOut string,
	tui bool,
	points int,
	interval time.Duration,
	logger *observability.CoreLogger,
) error {
	fs := afero.NewOsFs()

	cfg := chart.DefaultConfig()
	if configPath != "" {
		loaded, err := chart.LoadConfig(fs, configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Mode = mode
	if cfg.Title == "" {
		cfg.Title = "lineal demo"
	}

	store := chart.NewSeriesStore()
	store.AddSeries("signal", chart.Point{X: 0, Y: 0.5})
	store.AddSeries("noise", chart.Point{X: 0, Y: 0.5})

	host := scene.NewRoot("host")
	ch, err := chart.New(host, cfg, store, logger)
	if err != nil {
		return err
	}
	defer ch.Close()

	if tui {
		if err := runTUI(ch, points, interval, logger); err != nil {
			return err
		}
	} else {
		stream(store, points)
	}

	if svgOut != "" {
		w := int(cfg.Canvas.Width)
		h := int(cfg.Canvas.Height)
		if err := scene.WriteSVGFile(fs, svgOut, host, w, h); err != nil {
			return err
		}
		logger.Info("wrote SVG snapshot", "path", svgOut)
	}
	return nil
}

// runTUI streams synthetic points into the program's event loop while the
// terminal view runs.
func runTUI(
	ch *chart.Chart,
	points int,
	interval time.Duration,
	logger *observability.CoreLogger,
) error {
	model := termview.NewModel(ch, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 1; i <= points; i++ {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			x := float64(i)
			program.Send(termview.AppendMsg{
				Series: "signal",
				Point:  chart.Point{X: x, Y: signalAt(x)},
			})
			program.Send(termview.AppendMsg{
				Series: "noise",
				Point:  chart.Point{X: x, Y: 0.5 + 0.3*(rand.Float64()-0.5)},
			})
		}
		return nil
	})

	_, err := program.Run()
	cancel()
	if gerr := g.Wait(); gerr != nil && err == nil {
		err = gerr
	}
	return err
}

// stream feeds the store synchronously, exercising the update engine
// without a terminal.
func stream(store *chart.SeriesStore, points int) {
	for i := 1; i <= points; i++ {
		x := float64(i)
		_ = store.Append("signal", chart.Point{X: x, Y: signalAt(x)})
		_ = store.Append("noise", chart.Point{X: x, Y: 0.5 + 0.3*(rand.Float64()-0.5)})
	}
}

func signalAt(x float64) float64 {
	return 0.5 + 0.4*math.Sin(x/8)
}
