// Package config handles application configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raykavin/yieldchart/pkg/plot"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// EnvPrefix prefixes every environment override, e.g. YIELDCHART_SERVER_PORT
const EnvPrefix = "YIELDCHART"

// AppConfig holds the application configuration
type AppConfig struct {
	Server ServerConfig     `mapstructure:"server"`
	Page   plot.PageOptions `mapstructure:"page"`
	Style  plot.Style       `mapstructure:"style"`
}

// ServerConfig holds chart server settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Debug           bool          `mapstructure:"debug"`
	SurfaceID       string        `mapstructure:"surface_id"`
	ShutdownTimeout time.Duration `mapstructure:"-"`
}

// Load reads the optional YAML file at path and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	timeout, err := str2duration.ParseDuration(v.GetString("server.shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid server.shutdown_timeout: %w", err)
	}
	cfg.Server.ShutdownTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values viper cannot type-check
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.SurfaceID == "" {
		return errors.New("server.surface_id must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	page := plot.DefaultPageOptions()
	style := plot.DefaultStyle()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.surface_id", "chart")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("page.page_title", page.PageTitle)
	v.SetDefault("page.heading", page.Heading)
	v.SetDefault("page.chart_height", page.ChartHeight)
	v.SetDefault("page.echarts_url", page.EChartsURL)

	v.SetDefault("style.title", style.Title)
	v.SetDefault("style.title_font_size", style.TitleFontSize)
	v.SetDefault("style.title_font_weight", style.TitleFontWeight)
	v.SetDefault("style.series_name", style.SeriesName)
	v.SetDefault("style.tooltip_date_label", style.TooltipDateLabel)
	v.SetDefault("style.tooltip_value_label", style.TooltipValueLabel)
	v.SetDefault("style.value_suffix", style.ValueSuffix)
	v.SetDefault("style.label_rotate", style.LabelRotate)
	v.SetDefault("style.line_width", style.LineWidth)
	v.SetDefault("style.line_color", style.LineColor)
	v.SetDefault("style.area_top_color", style.AreaTopColor)
	v.SetDefault("style.area_bottom_color", style.AreaBottomColor)
}
