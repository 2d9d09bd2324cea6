package plot

import (
	"bytes"
	"testing"

	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshot(t *testing.T) {
	config, err := BuildConfiguration(scenarioPoints(), DefaultStyle())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderSnapshot(&buf, config, PageOptions{}))

	page := buf.String()
	require.Contains(t, page, "沪深300股息率可视化")
	require.Contains(t, page, "近一年沪深300股息率走势")
	require.Contains(t, page, "2023-02")
	require.Contains(t, page, "echarts.graphic.LinearGradient")
	require.Contains(t, page, "cdn.jsdelivr.net/npm/echarts@5.4.2/dist/")
	require.Contains(t, page, `"fontWeight":"bold"`)
	require.Contains(t, page, `"fontSize":18`)
	require.Contains(t, page, `"formatter":"{value} %"`)
	require.Contains(t, page, `"opacity":1`)
}

func TestRenderSnapshot_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, RenderSnapshot(&buf, nil, PageOptions{}), core.ErrConfiguration)
	require.ErrorIs(t, RenderSnapshot(&buf, &RenderConfig{}, PageOptions{}), core.ErrConfiguration)
	require.Zero(t, buf.Len())
}

func TestGradientJS(t *testing.T) {
	js := gradientJS(LinearGradient{
		Type: "linear", X2: 0, Y2: 1,
		ColorStops: []ColorStop{
			{Offset: 0, Color: "rgba(84, 112, 198, 0.7)"},
			{Offset: 1, Color: "rgba(84, 112, 198, 0.1)"},
		},
	})

	require.Equal(t,
		"new echarts.graphic.LinearGradient(0, 0, 0, 1, [{offset: 0, color: 'rgba(84, 112, 198, 0.7)'}, {offset: 1, color: 'rgba(84, 112, 198, 0.1)'}])",
		js)
}
