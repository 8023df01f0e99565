package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Side is the classified trade direction.
type Side int

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	}
	return "UNKNOWN"
}

// Status is the classified execution status. Only fully filled executions
// are eligible for aggregation.
type Status int

const (
	StatusOther Status = iota
	StatusFilled
)

var (
	buyRe    = regexp.MustCompile(`(?i)买入|buy`)
	sellRe   = regexp.MustCompile(`(?i)卖出|sell`)
	filledRe = regexp.MustCompile(`(?i)已成交|filled`)
	numRe    = regexp.MustCompile(`[^\d.\-]`)
	tokenRe  = regexp.MustCompile(`(?i)[A-Z0-9\-_.]+$`)
	alphaRe  = regexp.MustCompile(`(?i)(^|[^A-Za-z])ALPHA([^A-Za-z]|$)`)
)

// ParseSide classifies localized side text (买入/卖出, BUY/SELL).
func ParseSide(text string) Side {
	switch {
	case buyRe.MatchString(text):
		return SideBuy
	case sellRe.MatchString(text):
		return SideSell
	}
	return SideUnknown
}

// ParseStatus classifies localized status text (已成交, FILLED, partial...).
func ParseStatus(text string) Status {
	if filledRe.MatchString(text) {
		return StatusFilled
	}
	return StatusOther
}

// Timestamp layouts seen on the venue's history page.
var tsLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an upstream timestamp into an instant in loc.
// Accepts epoch seconds or milliseconds (pure digits) and the table's
// locale-formatted date strings. ok is false when nothing matches.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if isDigits(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		// Values this large can only be epoch milliseconds.
		if n >= 1e12 {
			return time.UnixMilli(n).In(loc), true
		}
		return time.Unix(n, 0).In(loc), true
	}
	for _, layout := range tsLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ParseNumber extracts a decimal from formatted cell text such as
// "1,195.73679 USDT" or "24.9113 KOGE". Returns 0 when nothing numeric
// survives.
func ParseNumber(text string) float64 {
	if text == "" {
		return 0
	}
	cleaned := numRe.ReplaceAllString(text, "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeToken canonicalizes a token label. The symbol cell wins
// ("KOGE/USDT" → "KOGE"); if it is empty the trailing run of the
// executed-qty cell is used ("24.91 KOGE" → "KOGE"); "UNKNOWN" otherwise.
func NormalizeToken(symbolRaw, executedQtyText string) string {
	t := strings.Join(strings.Fields(symbolRaw), "")
	if i := strings.Index(t, "/"); i >= 0 {
		t = t[:i]
	}
	if t == "" {
		if m := tokenRe.FindString(strings.TrimSpace(executedQtyText)); m != "" {
			t = strings.ToUpper(m)
		}
	}
	if t == "" {
		return "UNKNOWN"
	}
	return t
}

// IsAlphaToken reports whether token contains "ALPHA" as a whole word.
// "ALPHA" and "ALPHA2" match, "ALPHABET" does not.
func IsAlphaToken(token string) bool {
	return alphaRe.MatchString(token)
}
