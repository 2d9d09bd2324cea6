package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/samber/lo"
)

// RenderSnapshot writes a standalone HTML page rendering config, for use
// without the chart server.
func RenderSnapshot(w io.Writer, config *RenderConfig, page PageOptions) error {
	if config == nil || len(config.Series) == 0 {
		return fmt.Errorf("%w: nothing to render", core.ErrConfiguration)
	}
	page = page.orDefault()
	series := config.Series[0]

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  page.PageTitle,
			Width:      "100%",
			Height:     page.ChartHeight,
			AssetsHost: strings.TrimSuffix(page.EChartsURL, "echarts.min.js"),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: config.Title.Text,
			Left:  config.Title.Left,
			TitleStyle: &opts.TextStyle{
				FontSize:   config.Title.TextStyle.FontSize,
				FontWeight: config.Title.TextStyle.FontWeight,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   config.Tooltip.Trigger,
			Formatter: types.FuncStr(config.Tooltip.Formatter),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      config.XAxis.Type,
			AxisLabel: &opts.AxisLabel{Rotate: config.XAxis.AxisLabel.Rotate},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      config.YAxis.Type,
			AxisLabel: &opts.AxisLabel{Formatter: config.YAxis.AxisLabel.Formatter},
		}),
	)

	data := lo.Map(series.Data, func(v float64, _ int) opts.LineData {
		return opts.LineData{Value: v}
	})

	line.SetXAxis(config.Labels()).
		AddSeries(series.Name, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(series.Smooth)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: float32(series.LineStyle.Width)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: series.ItemStyle.Color}),
			charts.WithAreaStyleOpts(opts.AreaStyle{
				Color:   string(opts.FuncOpts(gradientJS(series.AreaStyle.Color))),
				Opacity: 1,
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}
	return nil
}

// gradientJS renders g as an echarts.graphic.LinearGradient constructor call
func gradientJS(g LinearGradient) string {
	stops := lo.Map(g.ColorStops, func(s ColorStop, _ int) string {
		return fmt.Sprintf("{offset: %s, color: '%s'}", FormatValue(s.Offset), s.Color)
	})

	return fmt.Sprintf("new echarts.graphic.LinearGradient(%s, %s, %s, %s, [%s])",
		FormatValue(g.X), FormatValue(g.Y), FormatValue(g.X2), FormatValue(g.Y2),
		strings.Join(stops, ", "))
}
