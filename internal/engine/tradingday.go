package engine

import "time"

// DefaultCutoffHour is the local hour at which a trading day rolls over.
// The reward program settles on an 08:00-to-08:00 window rather than
// midnight-to-midnight.
const DefaultCutoffHour = 8

// TradingDayOf maps an instant to its trading-day key (yyyy-mm-dd).
// An instant before the cutoff hour belongs to the previous calendar day;
// the cutoff itself (08:00:00 exactly) opens the current day.
func TradingDayOf(t time.Time, cutoffHour int) string {
	if t.Hour() < cutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format("2006-01-02")
}
