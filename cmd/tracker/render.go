package main

import (
	"fmt"

	"alpha-trade-tracker/internal/types"
)

func printDayResult(day types.DayResult) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("  Trading day %s  (08:00 → next 08:00)\n", day.Day)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("%-14s %16s %16s %14s\n", "TOKEN", "BUY TOTAL", "SELL TOTAL", "WEAR")
	var totalWear float64
	for _, row := range day.Tokens {
		fmt.Printf("%-14s %16.4f %16.4f %14.4f\n", row.Token, row.BuyNotional, row.SellNotional, row.Wear)
		totalWear += row.Wear
	}
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Total buy volume: %.2f USDT | Total wear: %.4f USDT\n", day.TotalBuyNotional, totalWear)
	printTierScore(day.TotalBuyNotional, day.Score)
	fmt.Println()
}

func printOverview(overview types.OverviewResult) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                      ALL-TIME OVERVIEW")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("%-14s %16s %16s %14s\n", "TOKEN", "BUY TOTAL", "SELL TOTAL", "PROFIT")
	for _, row := range overview.Tokens {
		fmt.Printf("%-14s %16.4f %16.4f %14.4f\n", row.Token, row.BuyNotional, row.SellNotional, row.Profit)
	}
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Total buy volume: %.2f USDT\n", overview.TotalBuyNotional)
	printTierScore(overview.TotalBuyNotional, overview.Score)
	fmt.Println()
}

func printTierScore(volume float64, score types.TierScore) {
	if score.CurrentTier != nil {
		fmt.Printf("  🏆 Tier score: %d  (reached $%.0f tier)\n", score.Score, score.CurrentTier.Volume)
	} else {
		fmt.Printf("  🏆 Tier score: 0  (below first tier, $%.2f traded)\n", volume)
	}
	if score.NextTier != nil {
		fmt.Printf("  Next tier: $%.0f (%d points) | gap: $%.2f\n",
			score.NextTier.Volume, score.NextTier.Score, score.Gap)
	} else {
		fmt.Println("  Top tier reached")
	}
}
