package yieldchart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/raykavin/yieldchart/internal/config"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/dataset"
	"github.com/raykavin/yieldchart/pkg/logger"
	"github.com/raykavin/yieldchart/pkg/metric"
	"github.com/raykavin/yieldchart/pkg/plot"
	"github.com/raykavin/yieldchart/pkg/report"
)

// DefaultLog is the default logger instance
var DefaultLog logger.Logger

// App wires the dataset, the chart adapter and its outputs together
type App struct {
	config *config.AppConfig
	log    logger.Logger
	points []core.DataPoint
}

// New creates an App; without WithConfig it loads defaults and environment overrides
func New(options ...Option) (*App, error) {
	app := &App{
		log:    DefaultLog,
		points: dataset.CSI300DividendYield(),
	}

	for _, option := range options {
		option(app)
	}

	if app.config == nil {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		app.config = cfg
	}

	return app, nil
}

// Configuration builds the chart option for the app's dataset
func (a *App) Configuration() (*plot.RenderConfig, error) {
	return plot.BuildConfiguration(a.points, a.config.Style)
}

// Serve binds a chart to the browser surface, applies the option and serves
// the page until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	option, err := a.Configuration()
	if err != nil {
		return err
	}

	surface := plot.NewBrowserSurface(a.config.Server.SurfaceID)
	ws := plot.NewWebSocketManager(a.log, surface)

	chart, err := plot.Initialize(plot.NewBrowserEngine(ws), surface, a.log)
	if err != nil {
		ws.Close()
		return err
	}
	defer chart.Close()

	if err := chart.Apply(option); err != nil {
		ws.Close()
		return err
	}

	summary := metric.Summarize(option.Values())
	a.log.WithFields(map[string]any{
		"points": summary.Count,
		"first":  option.XAxis.Data[0],
		"last":   option.XAxis.Data[len(option.XAxis.Data)-1],
		"mean":   fmt.Sprintf("%.2f", summary.Mean),
	}).Info("Chart option applied")

	options := []plot.Option{
		plot.WithPort(a.config.Server.Port),
		plot.WithPage(a.config.Page),
		plot.WithDataset(a.points),
	}
	if a.config.Server.Debug {
		options = append(options, plot.WithDebug())
	}

	server, err := plot.NewChartServer(chart, ws,
		plot.NewStandardHTTPServer(a.config.Server.ShutdownTimeout), a.log, options...)
	if err != nil {
		ws.Close()
		return err
	}

	return server.Start(ctx)
}

// Export writes a standalone HTML page of the chart
func (a *App) Export(w io.Writer) error {
	option, err := a.Configuration()
	if err != nil {
		return err
	}
	return plot.RenderSnapshot(w, option, a.config.Page)
}

// Summary prints the dataset table, statistics and distribution
func (a *App) Summary(w io.Writer) error {
	return report.Write(w, a.points, a.config.Style.ValueSuffix)
}

// WriteOption prints the chart option as indented JSON
func (a *App) WriteOption(w io.Writer) error {
	option, err := a.Configuration()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(option)
}
