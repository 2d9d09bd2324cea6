package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raykavin/yieldchart/pkg/plot"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.False(t, cfg.Server.Debug)
	require.Equal(t, "chart", cfg.Server.SurfaceID)
	require.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, plot.DefaultPageOptions(), cfg.Page)
	require.Equal(t, plot.DefaultStyle(), cfg.Style)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yieldchart.yaml")
	content := `
server:
  port: 9090
  shutdown_timeout: 1m
page:
  heading: Dividend yield
style:
  title: CSI 300
  line_color: "#000000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	require.Equal(t, "Dividend yield", cfg.Page.Heading)
	require.Equal(t, plot.DefaultPageOptions().PageTitle, cfg.Page.PageTitle)
	require.Equal(t, "CSI 300", cfg.Style.Title)
	require.Equal(t, "#000000", cfg.Style.LineColor)
	require.Equal(t, plot.DefaultStyle().LineWidth, cfg.Style.LineWidth)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("YIELDCHART_SERVER_PORT", "7000")
	t.Setenv("YIELDCHART_SERVER_SHUTDOWN_TIMEOUT", "2d")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, 48*time.Hour, cfg.Server.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("YIELDCHART_SERVER_SHUTDOWN_TIMEOUT", "soon")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &AppConfig{Server: ServerConfig{Port: 0, SurfaceID: "chart", ShutdownTimeout: time.Second}}
	require.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Server.SurfaceID = ""
	require.Error(t, cfg.Validate())

	cfg.Server.SurfaceID = "chart"
	cfg.Server.ShutdownTimeout = 0
	require.Error(t, cfg.Validate())

	cfg.Server.ShutdownTimeout = time.Second
	require.NoError(t, cfg.Validate())
}
