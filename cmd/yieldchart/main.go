package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/raykavin/yieldchart"
	"github.com/raykavin/yieldchart/internal/config"
	"github.com/spf13/cobra"
)

// Command line flags
var (
	// Global flags
	configFile string

	// Serve command flags
	port  int
	debug bool

	// Export command flags
	outputFile string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:          "yieldchart",
		Short:        "CSI 300 dividend yield chart",
		Long: heredoc.Doc(`
			Renders the CSI 300 dividend yield series as an ECharts line chart.

			Configuration is read from the optional --config YAML file and from
			YIELDCHART_* environment variables, e.g. YIELDCHART_SERVER_PORT=9090.
		`),
		Version:      "1.0.0",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (e.g. ./yieldchart.yaml)")

	// Add commands
	rootCmd.AddCommand(
		buildServeCmd(),
		buildExportCmd(),
		buildSummaryCmd(),
		buildOptionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart page",
		Long: heredoc.Doc(`
			Serves the chart page and pushes the chart option to every connected
			browser. Browser resize reports trigger a layout recalculation of the
			chart; the data is never rebuilt.
		`),
		Example: heredoc.Doc(`
			$ yieldchart serve --port 9090
		`),
		RunE:  runServe,
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (default from config, 8080)")
	serveCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Serve the page script unminified")

	return serveCmd
}

func buildExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the chart as a standalone HTML file",
		RunE:  runExport,
	}

	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (e.g. ./chart.html)")
	exportCmd.MarkFlagRequired("output")

	return exportCmd
}

func buildSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dataset with summary statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.Summary(cmd.OutOrStdout())
		},
	}
}

func buildOptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "option",
		Short: "Print the chart option as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.WriteOption(cmd.OutOrStdout())
		},
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// Flags win over file and environment
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("debug") {
		cfg.Server.Debug = debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	app, err := yieldchart.New(yieldchart.WithConfig(cfg))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

func runExport(_ *cobra.Command, _ []string) (err error) {
	app, err := newApp()
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := app.Export(file); err != nil {
		return err
	}

	yieldchart.DefaultLog.Infof("Chart exported to %s", outputFile)
	return nil
}

func newApp() (*yieldchart.App, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return yieldchart.New(yieldchart.WithConfig(cfg))
}
