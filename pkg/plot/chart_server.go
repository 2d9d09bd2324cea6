package plot

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/logger"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

// PageOptions describes the page hosting the chart surface
type PageOptions struct {
	PageTitle   string `mapstructure:"page_title"`
	Heading     string `mapstructure:"heading"`
	ChartHeight string `mapstructure:"chart_height"`
	EChartsURL  string `mapstructure:"echarts_url"`
}

// DefaultPageOptions returns the CSI 300 page layout
func DefaultPageOptions() PageOptions {
	return PageOptions{
		PageTitle:   "沪深300股息率可视化",
		Heading:     "沪深300指数股息率",
		ChartHeight: "600px",
		EChartsURL:  "https://cdn.jsdelivr.net/npm/echarts@5.4.2/dist/echarts.min.js",
	}
}

func (p PageOptions) orDefault() PageOptions {
	def := DefaultPageOptions()
	if p.PageTitle == "" {
		p.PageTitle = def.PageTitle
	}
	if p.Heading == "" {
		p.Heading = def.Heading
	}
	if p.ChartHeight == "" {
		p.ChartHeight = def.ChartHeight
	}
	if p.EChartsURL == "" {
		p.EChartsURL = def.EChartsURL
	}
	return p
}

// ChartServer serves the page, its script and the chart data over HTTP
type ChartServer struct {
	chart         *Chart
	ws            *WebSocketManager
	server        HTTPServer
	log           logger.Logger
	port          int
	debug         bool
	page          PageOptions
	points        []core.DataPoint
	scriptContent string
	indexHTML     *template.Template
}

// Option defines a function type for configuring a ChartServer instance
type Option func(*ChartServer)

// WithPort sets the HTTP server port
func WithPort(port int) Option {
	return func(s *ChartServer) {
		s.port = port
	}
}

// WithDebug enables debug mode (disables minification)
func WithDebug() Option {
	return func(s *ChartServer) {
		s.debug = true
	}
}

// WithPage overrides the page layout
func WithPage(page PageOptions) Option {
	return func(s *ChartServer) {
		s.page = page
	}
}

// WithDataset exposes the plotted points on /data and /history
func WithDataset(points []core.DataPoint) Option {
	return func(s *ChartServer) {
		s.points = points
	}
}

// NewChartServer prepares the page template and script for chart
func NewChartServer(chart *Chart, ws *WebSocketManager, server HTTPServer, log logger.Logger, options ...Option) (*ChartServer, error) {
	s := &ChartServer{
		chart:  chart,
		ws:     ws,
		server: server,
		log:    log,
		port:   8080,
	}

	for _, option := range options {
		option(s)
	}
	s.page = s.page.orDefault()

	var err error
	s.indexHTML, err = template.ParseFS(staticFiles, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart template: %w", err)
	}

	chartJS, err := staticFiles.ReadFile("assets/chart.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read chart.js: %w", err)
	}

	transpiled := api.Transform(string(chartJS), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !s.debug,
		MinifyIdentifiers: !s.debug,
		MinifyWhitespace:  !s.debug,
	})
	if len(transpiled.Errors) > 0 {
		return nil, fmt.Errorf("chart script failed with: %v", transpiled.Errors)
	}
	s.scriptContent = string(transpiled.Code)

	return s, nil
}

// Port returns the configured port
func (s *ChartServer) Port() int {
	return s.port
}

// RegisterHandlers registers all routes on the HTTP server
func (s *ChartServer) RegisterHandlers() {
	s.server.RegisterHandler("/assets/chart.js", s.handleScript)
	s.server.RegisterHandler("/health", s.handleHealth)
	s.server.RegisterHandler("/option", s.handleOption)
	s.server.RegisterHandler("/data", s.handleData)
	s.server.RegisterHandler("/history", s.handleHistory)
	s.server.RegisterHandler("/ws", s.ws.HandleWebSocket)
	s.server.RegisterHandler("/", s.handleIndex)
}

// Start registers the routes and serves until ctx is done
func (s *ChartServer) Start(ctx context.Context) error {
	s.RegisterHandlers()

	s.log.Infof("Chart available at http://localhost:%d", s.port)
	defer s.ws.Close()

	return s.server.Start(ctx, s.port)
}
