package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alpha-trade-tracker/internal/collector"
	"alpha-trade-tracker/internal/engine"
	"alpha-trade-tracker/internal/export"
	"alpha-trade-tracker/internal/logger"
	"alpha-trade-tracker/internal/store"
	"alpha-trade-tracker/internal/trace"
)

var (
	inputDir  string
	exportCSV bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run one collection session and summarize it",
	Long: `Collect runs a single collection session: it gathers trade records
either by scraping the configured order-history URL or by replaying a
directory of saved page/API captures, then prints per-day summaries and
the all-time overview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := trace.StartSpan(context.Background(), "collect")
		defer span.End()

		sess := store.NewSession(cfg.Location())

		if inputDir != "" {
			n, err := collector.CollectDir(ctx, inputDir, sess)
			if err != nil {
				return err
			}
			logger.Info(ctx, "Capture replay finished", "dir", inputDir, "records", n)
		} else {
			if cfg.Scrape.BaseURL == "" {
				return errors.New("no scrape.base_url configured and no --input directory given")
			}
			if err := collector.New(cfg).Collect(ctx, sess); err != nil {
				return err
			}
		}

		eng := engine.New(engine.Options{
			ExcludeAlphaTokens: cfg.ExcludeAlphaTokens,
			FeeRate:            cfg.FeeRate,
			CutoffHour:         cfg.DayCutoffHour,
		})

		days := eng.DayResults(sess)
		if len(days) == 0 {
			fmt.Println("No eligible trade records collected.")
			return nil
		}

		for _, day := range days {
			logger.Score(ctx, day.Day, day.TotalBuyNotional, day.Score.Score)
			printDayResult(day)
		}

		overview := engine.Overview(days)
		printOverview(overview)

		if exportCSV {
			for _, day := range days {
				p, err := export.WriteDayCSV(cfg.Export.Dir, day)
				if err != nil {
					return fmt.Errorf("failed to export day %s: %w", day.Day, err)
				}
				logger.Info(ctx, "Day CSV written", "path", p)
			}
			p, err := export.WriteAllCSV(cfg.Export.Dir, days)
			if err != nil {
				return fmt.Errorf("failed to export cross-day CSV: %w", err)
			}
			logger.Info(ctx, "Cross-day CSV written", "path", p)
			fmt.Printf("\nCSV files written to %s\n", cfg.Export.Dir)
		}
		return nil
	},
}

func init() {
	collectCmd.Flags().StringVar(&inputDir, "input", "", "replay saved *.html / *.json captures from this directory instead of scraping")
	collectCmd.Flags().BoolVar(&exportCSV, "csv", false, "export per-day and cross-day CSV files")
}
