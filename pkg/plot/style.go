package plot

// Style holds the visual settings applied by BuildConfiguration.
// Zero fields fall back to DefaultStyle.
type Style struct {
	Title             string  `mapstructure:"title"`
	TitleFontSize     int     `mapstructure:"title_font_size"`
	TitleFontWeight   string  `mapstructure:"title_font_weight"`
	SeriesName        string  `mapstructure:"series_name"`
	TooltipDateLabel  string  `mapstructure:"tooltip_date_label"`
	TooltipValueLabel string  `mapstructure:"tooltip_value_label"`
	ValueSuffix       string  `mapstructure:"value_suffix"`
	LabelRotate       float64 `mapstructure:"label_rotate"`
	LineWidth         float64 `mapstructure:"line_width"`
	LineColor         string  `mapstructure:"line_color"`
	AreaTopColor      string  `mapstructure:"area_top_color"`
	AreaBottomColor   string  `mapstructure:"area_bottom_color"`
}

// DefaultStyle returns the CSI 300 dividend yield look
func DefaultStyle() Style {
	return Style{
		Title:             "近一年沪深300股息率走势",
		TitleFontSize:     18,
		TitleFontWeight:   "bold",
		SeriesName:        "股息率",
		TooltipDateLabel:  "日期",
		TooltipValueLabel: "股息率",
		ValueSuffix:       "%",
		LabelRotate:       45,
		LineWidth:         3,
		LineColor:         "#5470C6",
		AreaTopColor:      "rgba(84, 112, 198, 0.7)",
		AreaBottomColor:   "rgba(84, 112, 198, 0.1)",
	}
}

func (s Style) orDefault() Style {
	def := DefaultStyle()

	if s.Title == "" {
		s.Title = def.Title
	}
	if s.TitleFontSize == 0 {
		s.TitleFontSize = def.TitleFontSize
	}
	if s.TitleFontWeight == "" {
		s.TitleFontWeight = def.TitleFontWeight
	}
	if s.SeriesName == "" {
		s.SeriesName = def.SeriesName
	}
	if s.TooltipDateLabel == "" {
		s.TooltipDateLabel = def.TooltipDateLabel
	}
	if s.TooltipValueLabel == "" {
		s.TooltipValueLabel = def.TooltipValueLabel
	}
	if s.ValueSuffix == "" {
		s.ValueSuffix = def.ValueSuffix
	}
	if s.LabelRotate == 0 {
		s.LabelRotate = def.LabelRotate
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	if s.LineColor == "" {
		s.LineColor = def.LineColor
	}
	if s.AreaTopColor == "" {
		s.AreaTopColor = def.AreaTopColor
	}
	if s.AreaBottomColor == "" {
		s.AreaBottomColor = def.AreaBottomColor
	}

	return s
}
