package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"alpha-trade-tracker/internal/engine"
)

var scoreCmd = &cobra.Command{
	Use:   "score VOLUME",
	Short: "Show the tier score for a cumulative buy volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid volume '%s': %w", args[0], err)
		}
		printTierScore(volume, engine.ScoreFor(volume))
		return nil
	},
}
