package yieldchart

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/raykavin/yieldchart/internal/config"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/logger/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, options ...Option) *App {
	t.Helper()

	log, err := zerolog.New(zerolog.Config{Level: "error", Output: io.Discard})
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)

	app, err := New(append([]Option{WithConfig(cfg), WithLogger(log)}, options...)...)
	require.NoError(t, err)
	return app
}

func TestNewDefaults(t *testing.T) {
	app, err := New()
	require.NoError(t, err)
	require.NotNil(t, app.config)
	assert.Equal(t, DefaultLog, app.log)
	assert.Len(t, app.points, 10)
}

func TestAppConfiguration(t *testing.T) {
	app := newTestApp(t, WithDataset([]core.DataPoint{
		{Date: "2023-01", Value: 2.85},
		{Date: "2023-02", Value: 2.78},
		{Date: "2023-03", Value: 2.91},
	}))

	option, err := app.Configuration()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01", "2023-02", "2023-03"}, option.Labels())
	assert.Equal(t, []float64{2.85, 2.78, 2.91}, option.Values())
}

func TestAppEmptyDataset(t *testing.T) {
	app := newTestApp(t, WithDataset(nil))

	_, err := app.Configuration()
	assert.ErrorIs(t, err, core.ErrConfiguration)

	err = app.Serve(context.Background())
	assert.ErrorIs(t, err, core.ErrConfiguration)

	err = app.Export(io.Discard)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestAppWriteOption(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, app.WriteOption(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "title")
	assert.Contains(t, decoded, "series")
	assert.Contains(t, buf.String(), "日期：{b0}<br>股息率：{c0}%")
}

func TestAppExport(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, app.Export(&buf))
	assert.Contains(t, buf.String(), "近一年沪深300股息率走势")
	assert.Contains(t, buf.String(), "2023-10")
}

func TestAppSummary(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, app.Summary(&buf))
	out := buf.String()
	assert.Contains(t, out, "2023-01")
	assert.Contains(t, out, "2023-10")
	assert.True(t, strings.Contains(out, "%"))
}

func TestAppServeStopsWithContext(t *testing.T) {
	app := newTestApp(t)
	app.config.Server.Port = 18473

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, app.Serve(ctx))
}

func TestParseBoolEnv(t *testing.T) {
	t.Setenv(envLogColor, "false")
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	require.NoError(t, err)
	assert.False(t, colored)

	t.Setenv(envLogJSON, "maybe")
	_, err = parseBoolEnv(envLogJSON, defaultLogJSON)
	assert.Error(t, err)

	assert.Equal(t, "fallback", getEnvWithDefault("YIELDCHART_UNSET_VARIABLE", "fallback"))
}
