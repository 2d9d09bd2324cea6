package plot

import (
	"fmt"
	"strconv"

	"github.com/raykavin/yieldchart/pkg/core"
)

// RenderConfig is the ECharts option object handed to the rendering engine.
// Field names follow the engine's option keys so it can be sent as JSON.
type RenderConfig struct {
	Title   Title        `json:"title"`
	Tooltip Tooltip      `json:"tooltip"`
	XAxis   XAxis        `json:"xAxis"`
	YAxis   YAxis        `json:"yAxis"`
	Series  []LineSeries `json:"series"`

	format tooltipFormat
}

// TextStyle holds font settings
type TextStyle struct {
	FontSize   int    `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
}

// Title is the chart heading
type Title struct {
	Text      string    `json:"text"`
	Left      string    `json:"left,omitempty"`
	TextStyle TextStyle `json:"textStyle"`
}

// Tooltip shows the hovered point
type Tooltip struct {
	Trigger   string `json:"trigger"`
	Formatter string `json:"formatter,omitempty"`
}

// AxisLabel configures tick labels of an axis
type AxisLabel struct {
	Rotate    float64 `json:"rotate,omitempty"`
	Formatter string  `json:"formatter,omitempty"`
}

// XAxis is the categorical axis carrying the period labels
type XAxis struct {
	Type      string    `json:"type"`
	Data      []string  `json:"data"`
	AxisLabel AxisLabel `json:"axisLabel"`
}

// YAxis is the numeric axis
type YAxis struct {
	Type      string    `json:"type"`
	AxisLabel AxisLabel `json:"axisLabel"`
}

// LineStyle configures the stroke
type LineStyle struct {
	Width float64 `json:"width"`
}

// ItemStyle configures point and line color
type ItemStyle struct {
	Color string `json:"color"`
}

// ColorStop is one stop of a gradient
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// LinearGradient is a gradient fill between (X, Y) and (X2, Y2) in
// coordinates relative to the filled shape.
type LinearGradient struct {
	Type       string      `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	X2         float64     `json:"x2"`
	Y2         float64     `json:"y2"`
	ColorStops []ColorStop `json:"colorStops"`
}

// AreaStyle fills the area below the line
type AreaStyle struct {
	Color LinearGradient `json:"color"`
}

// LineSeries is a single plotted line
type LineSeries struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Data      []float64 `json:"data"`
	Smooth    bool      `json:"smooth"`
	LineStyle LineStyle `json:"lineStyle"`
	ItemStyle ItemStyle `json:"itemStyle"`
	AreaStyle AreaStyle `json:"areaStyle"`
}

type tooltipFormat struct {
	dateLabel   string
	valueLabel  string
	valueSuffix string
}

// BuildConfiguration maps an ordered dataset into a chart option.
// An empty or malformed dataset yields core.ErrConfiguration.
func BuildConfiguration(points []core.DataPoint, style Style) (*RenderConfig, error) {
	data, err := core.NewSeriesData(points)
	if err != nil {
		return nil, err
	}

	style = style.orDefault()
	format := tooltipFormat{
		dateLabel:   style.TooltipDateLabel,
		valueLabel:  style.TooltipValueLabel,
		valueSuffix: style.ValueSuffix,
	}

	return &RenderConfig{
		Title: Title{
			Text: style.Title,
			Left: "center",
			TextStyle: TextStyle{
				FontSize:   style.TitleFontSize,
				FontWeight: style.TitleFontWeight,
			},
		},
		Tooltip: Tooltip{
			Trigger:   "axis",
			Formatter: format.template(),
		},
		XAxis: XAxis{
			Type:      "category",
			Data:      data.Labels(),
			AxisLabel: AxisLabel{Rotate: style.LabelRotate},
		},
		YAxis: YAxis{
			Type:      "value",
			AxisLabel: AxisLabel{Formatter: "{value} " + style.ValueSuffix},
		},
		Series: []LineSeries{{
			Name:      style.SeriesName,
			Type:      "line",
			Data:      data.Values(),
			Smooth:    true,
			LineStyle: LineStyle{Width: style.LineWidth},
			ItemStyle: ItemStyle{Color: style.LineColor},
			AreaStyle: AreaStyle{Color: LinearGradient{
				Type: "linear",
				X:    0, Y: 0, X2: 0, Y2: 1,
				ColorStops: []ColorStop{
					{Offset: 0, Color: style.AreaTopColor},
					{Offset: 1, Color: style.AreaBottomColor},
				},
			}},
		}},
		format: format,
	}, nil
}

// Labels returns a copy of the category labels
func (c *RenderConfig) Labels() []string {
	return append([]string(nil), c.XAxis.Data...)
}

// Values returns a copy of the plotted values
func (c *RenderConfig) Values() []float64 {
	if len(c.Series) == 0 {
		return nil
	}
	return append([]float64(nil), c.Series[0].Data...)
}

// TooltipText renders the tooltip shown while hovering the point at index i
func (c *RenderConfig) TooltipText(i int) (string, error) {
	values := c.Values()
	if i < 0 || i >= len(c.XAxis.Data) || i >= len(values) {
		return "", fmt.Errorf("%w: tooltip index %d out of range", core.ErrConfiguration, i)
	}
	return c.tooltipFormat().text(c.XAxis.Data[i], values[i]), nil
}

func (c *RenderConfig) tooltipFormat() tooltipFormat {
	if c.format == (tooltipFormat{}) {
		def := DefaultStyle()
		return tooltipFormat{def.TooltipDateLabel, def.TooltipValueLabel, def.ValueSuffix}
	}
	return c.format
}

// template is the engine-side equivalent of text, using the axis tooltip
// placeholders for the first series.
func (f tooltipFormat) template() string {
	return f.dateLabel + "：{b0}<br>" + f.valueLabel + "：{c0}" + f.valueSuffix
}

func (f tooltipFormat) text(label string, value float64) string {
	return f.dateLabel + "：" + label + "<br>" + f.valueLabel + "：" + FormatValue(value) + f.valueSuffix
}

// FormatValue prints v in its shortest exact form (3.10 -> "3.1")
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
