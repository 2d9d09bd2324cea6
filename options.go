package yieldchart

import (
	"github.com/raykavin/yieldchart/internal/config"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/logger"
)

// Option is a functional option for configuring an App
type Option func(*App)

// WithConfig replaces the configuration loaded from defaults and environment
func WithConfig(cfg *config.AppConfig) Option {
	return func(app *App) {
		app.config = cfg
	}
}

// WithLogger sets the logger, DefaultLog otherwise
func WithLogger(log logger.Logger) Option {
	return func(app *App) {
		app.log = log
	}
}

// WithDataset replaces the built-in CSI 300 series
func WithDataset(points []core.DataPoint) Option {
	return func(app *App) {
		app.points = points
	}
}
