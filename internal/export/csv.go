package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"alpha-trade-tracker/internal/types"
)

// WriteDayCSV serializes one day result to <dir>/alpha_stats_<day>.csv.
// Rows keep the result's wear-descending order; a TOTAL footer carries the
// day's buy notional and wear sum.
func WriteDayCSV(dir string, day types.DayResult) (string, error) {
	outPath := filepath.Join(dir, "alpha_stats_"+day.Day+".csv")
	w, f, err := openCSV(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	defer w.Flush()

	if err := w.Write([]string{"token", "buy_total", "sell_total", "wear"}); err != nil {
		return "", err
	}
	var totalSell, totalWear float64
	for _, row := range day.Tokens {
		rec := []string{
			row.Token,
			fmt.Sprintf("%.8f", row.BuyNotional),
			fmt.Sprintf("%.8f", row.SellNotional),
			fmt.Sprintf("%.8f", row.Wear),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
		totalSell += row.SellNotional
		totalWear += row.Wear
	}
	footer := []string{
		"TOTAL",
		fmt.Sprintf("%.8f", day.TotalBuyNotional),
		fmt.Sprintf("%.8f", totalSell),
		fmt.Sprintf("%.8f", totalWear),
	}
	if err := w.Write(footer); err != nil {
		return "", err
	}
	return outPath, nil
}

// WriteAllCSV serializes every day of a session to
// <dir>/alpha_stats_all.csv, sorted by date descending then token
// ascending.
func WriteAllCSV(dir string, days []types.DayResult) (string, error) {
	type line struct {
		day  string
		stat types.TokenDayStat
	}
	var lines []line
	for _, d := range days {
		for _, stat := range d.Tokens {
			lines = append(lines, line{day: d.Day, stat: stat})
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].day != lines[j].day {
			return lines[i].day > lines[j].day
		}
		return lines[i].stat.Token < lines[j].stat.Token
	})

	outPath := filepath.Join(dir, "alpha_stats_all.csv")
	w, f, err := openCSV(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	defer w.Flush()

	if err := w.Write([]string{"date", "token", "buy_total", "sell_total", "wear"}); err != nil {
		return "", err
	}
	for _, l := range lines {
		rec := []string{
			l.day,
			l.stat.Token,
			fmt.Sprintf("%.8f", l.stat.BuyNotional),
			fmt.Sprintf("%.8f", l.stat.SellNotional),
			fmt.Sprintf("%.8f", l.stat.Wear),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	return outPath, nil
}

func openCSV(outPath string) (*csv.Writer, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(f), f, nil
}
