package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"alpha-trade-tracker/internal/config"
	"alpha-trade-tracker/internal/logger"
	"alpha-trade-tracker/internal/trace"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Per-day trade statistics and volume tier scoring for Alpha trading",
	Long: `tracker collects trade-execution records from the venue's order-history
pages (live scrape or saved captures), aggregates them into per-day,
per-token buy/sell totals and a trading-cost ("wear") metric, and reports
the volume tier score for the loyalty program.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if err := logger.Init(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if err := trace.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
		}
		var err error
		cfg, err = loadConfig(cfgPath)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = trace.Shutdown(context.Background())
	},
}

// loadConfig loads config.yaml, falling back to defaults when only the
// default path is missing; an explicitly given path must exist.
func loadConfig(path string) (*config.Config, error) {
	c, err := config.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) && path == "config.yaml" {
			return config.Default(), nil
		}
		return nil, err
	}
	return c, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(scoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
