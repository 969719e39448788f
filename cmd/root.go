package cmd

import (
	"context"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/carbonmap/internal/config"
	"github.com/KaramelBytes/carbonmap/internal/dashboard"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/KaramelBytes/carbonmap/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagDataDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "carbonmap",
	Short: "Carbon flux and social cost of carbon choropleth dashboard",
	Long: `carbonmap loads country-level carbon flux, social cost of carbon and
bilateral flow tables, bins them into color categories and serves them as
interactive world maps. The same panels can be rendered to JSON, markdown or
an Excel workbook from the command line.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.carbonmap/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory or base URL holding the datasets (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if debug {
		cfg.LogLevel = "debug"
	}
}

func newLogger() (*zap.Logger, error) {
	if cfg == nil {
		return logging.New(logging.Options{})
	}
	return logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
}

// loadDashboard fetches every dataset and builds the dashboard. Any failure
// aborts the command with one message naming the dataset.
func loadDashboard(ctx context.Context) (*dashboard.Dashboard, *zap.Logger, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("no configuration loaded")
	}
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, nil, err
	}
	data, err := dataset.LoadAll(ctx, cfg.Sources(), dataset.LoadOptions{
		Timeout: cfg.FetchTimeout(),
		Read:    dataset.ReadOptions{Delimiter: delim, Sheet: cfg.Sheet},
		Schema:  dashboard.Schema(),
		Logger:  log,
	})
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("load datasets: %w", err)
	}
	return dashboard.New(data, log), log, nil
}
