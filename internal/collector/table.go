package collector

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"alpha-trade-tracker/internal/parse"
	"alpha-trade-tracker/internal/types"
)

// Column-header matchers for the venue's order-history table. The page
// serves localized headers, so both the Chinese and English variants are
// recognized.
var headerMatchers = map[string]*regexp.Regexp{
	"time":   regexp.MustCompile(`(?i)时间|time`),
	"symbol": regexp.MustCompile(`(?i)代币|币种|symbol`),
	"side":   regexp.MustCompile(`(?i)方向|side`),
	"filled": regexp.MustCompile(`(?i)已成交|executed`),
	"amount": regexp.MustCompile(`(?i)成交额|quote|金额|filled\s*quote`),
	"status": regexp.MustCompile(`(?i)状态|status`),
}

// ErrNoOrderTable is returned when a document carries no recognizable
// order-history table.
var ErrNoOrderTable = errors.New("no order table found")

// ParseOrderTable extracts raw trade records from the first order-history
// table under root. Column positions are discovered from the header row;
// rows shorter than the header (the UI's expandable detail rows) are
// skipped. Values are carried over verbatim where possible so that the
// session's own validation decides what is eligible.
func ParseOrderTable(root *goquery.Selection) ([]types.RawTradeRecord, error) {
	table := root
	if !root.Is("table") {
		table = root.Find("table").First()
		if table.Length() == 0 {
			return nil, ErrNoOrderTable
		}
	}

	headers := []string{}
	table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})
	if len(headers) == 0 {
		return nil, ErrNoOrderTable
	}

	idx := map[string]int{}
	for name, re := range headerMatchers {
		idx[name] = -1
		for i, h := range headers {
			if re.MatchString(h) {
				idx[name] = i
				break
			}
		}
	}
	if idx["time"] < 0 && idx["symbol"] < 0 {
		return nil, ErrNoOrderTable
	}

	var records []types.RawTradeRecord
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 || cells.Length() < len(headers) {
			return
		}
		get := func(name string) string {
			i := idx[name]
			if i < 0 || i >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(i).Text())
		}
		filled := get("filled")
		records = append(records, types.RawTradeRecord{
			Provenance:      types.ProvenanceDOM,
			Timestamp:       get("time"),
			SymbolRaw:       get("symbol"),
			SideRaw:         get("side"),
			StatusRaw:       get("status"),
			ExecutedQty:     parse.ParseNumber(filled),
			ExecutedQtyText: filled,
			QuoteNotional:   parse.ParseNumber(get("amount")),
		})
	})
	return records, nil
}
