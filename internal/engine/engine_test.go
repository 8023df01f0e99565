package engine

import (
	"math"
	"reflect"
	"testing"
	"time"

	"alpha-trade-tracker/internal/store"
	"alpha-trade-tracker/internal/types"
)

func domRecord(ts, symbol, side string, qty, quote float64) types.RawTradeRecord {
	return types.RawTradeRecord{
		Timestamp:     ts,
		SymbolRaw:     symbol,
		SideRaw:       side,
		StatusRaw:     "FILLED",
		ExecutedQty:   qty,
		QuoteNotional: quote,
	}
}

func newSession(t *testing.T, records ...types.RawTradeRecord) *store.Session {
	t.Helper()
	sess := store.NewSession(time.UTC)
	sess.Merge(records, types.ProvenanceDOM)
	return sess
}

func TestAggregateOrderIndependence(t *testing.T) {
	records := []types.RawTradeRecord{
		domRecord("2025-01-10 12:00:00", "KOGE", "BUY", 60, 600),
		domRecord("2025-01-10 13:00:00", "KOGE", "SELL", 50, 550),
		domRecord("2025-01-10 14:00:00", "BR", "BUY", 10, 100),
		domRecord("2025-01-10 15:00:00", "KOGE", "BUY", 40, 400),
	}
	eng := New(Options{})

	base := eng.Aggregate(newSession(t, records...))

	perms := [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, p := range perms {
		shuffled := make([]types.RawTradeRecord, len(records))
		for i, j := range p {
			shuffled[i] = records[j]
		}
		got := eng.Aggregate(newSession(t, shuffled...))
		if !reflect.DeepEqual(base, got) {
			t.Errorf("aggregate differs for permutation %v", p)
		}
	}
}

func TestAggregateNormalizesTokenBuckets(t *testing.T) {
	sess := newSession(t,
		domRecord("2025-01-10 12:00:00", "KOGE/USDT", "BUY", 1, 10),
		domRecord("2025-01-10 13:00:00", "KOGE", "BUY", 2, 20),
	)
	days := New(Options{}).Aggregate(sess)

	cells := days["2025-01-10"]
	if len(cells) != 1 {
		t.Fatalf("expected one token bucket, got %d", len(cells))
	}
	agg, ok := cells["KOGE"]
	if !ok {
		t.Fatal("expected KOGE bucket")
	}
	if agg.BuyQty != 3 || agg.BuyNotional != 30 {
		t.Errorf("expected merged bucket qty 3 / notional 30, got %+v", agg)
	}
}

func TestAggregateExcludesAlphaTokensWhenFlagged(t *testing.T) {
	records := []types.RawTradeRecord{
		domRecord("2025-01-10 12:00:00", "ALPHA", "BUY", 1, 10),
		domRecord("2025-01-10 12:00:00", "ALPHABET", "BUY", 1, 10),
		domRecord("2025-01-10 12:00:00", "KOGE", "BUY", 1, 10),
	}

	days := New(Options{ExcludeAlphaTokens: true}).Aggregate(newSession(t, records...))
	cells := days["2025-01-10"]
	if _, ok := cells["ALPHA"]; ok {
		t.Error("expected ALPHA to be excluded")
	}
	if _, ok := cells["ALPHABET"]; !ok {
		t.Error("expected ALPHABET to survive the whole-word filter")
	}
	if _, ok := cells["KOGE"]; !ok {
		t.Error("expected KOGE to survive")
	}

	days = New(Options{}).Aggregate(newSession(t, records...))
	if _, ok := days["2025-01-10"]["ALPHA"]; !ok {
		t.Error("expected ALPHA to be kept when the flag is off")
	}
}

func TestAggregateUsesDOMRecordsOnly(t *testing.T) {
	sess := store.NewSession(time.UTC)
	api := domRecord("1755207637000", "KOGE", "BUY", 1, 10)
	api.ExternalID = "42"
	sess.Merge([]types.RawTradeRecord{api}, types.ProvenanceAPI)

	days := New(Options{}).Aggregate(sess)
	if len(days) != 0 {
		t.Errorf("expected API-only session to aggregate to nothing, got %d days", len(days))
	}
}

func TestWearRoundTripScenario(t *testing.T) {
	sess := newSession(t,
		domRecord("2025-01-10 12:00:00", "KOGE", "BUY", 60, 600),
		domRecord("2025-01-10 13:00:00", "KOGE", "BUY", 40, 400),
		domRecord("2025-01-10 14:00:00", "KOGE", "SELL", 50, 550),
	)
	eng := New(Options{})

	days := eng.DayResults(sess)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	day := days[0]
	if day.Day != "2025-01-10" {
		t.Errorf("expected day 2025-01-10, got %s", day.Day)
	}
	if len(day.Tokens) != 1 {
		t.Fatalf("expected 1 token row, got %d", len(day.Tokens))
	}

	row := day.Tokens[0]
	// avgBuy=10, avgSell=11, matched=50:
	// 50*(10-11) + 1000*0.0001 + 550*0.0001 = -49.845
	if math.Abs(row.Wear-(-49.845)) > 1e-9 {
		t.Errorf("expected wear -49.845, got %v", row.Wear)
	}
	if day.TotalBuyNotional != 1000 {
		t.Errorf("expected total buy notional 1000, got %v", day.TotalBuyNotional)
	}
	if day.Score.Score != 9 {
		t.Errorf("expected tier score 9, got %d", day.Score.Score)
	}
	if day.Score.NextTier == nil || day.Score.NextTier.Volume != 1024 {
		t.Fatalf("expected next tier 1024, got %+v", day.Score.NextTier)
	}
	if day.Score.Gap != 24 {
		t.Errorf("expected gap 24, got %v", day.Score.Gap)
	}
}

func TestWearOneSided(t *testing.T) {
	buyOnly := types.TokenDayAggregate{BuyQty: 10, BuyNotional: 100}
	// 100 - 0 + 100*0.0001
	if got := Wear(buyOnly, DefaultFeeRate); math.Abs(got-100.01) > 1e-9 {
		t.Errorf("buy-only wear = %v, want 100.01", got)
	}

	sellOnly := types.TokenDayAggregate{SellQty: 10, SellNotional: 100}
	if got := Wear(sellOnly, DefaultFeeRate); got != 0 {
		t.Errorf("sell-only wear = %v, want 0", got)
	}

	if got := Wear(types.TokenDayAggregate{}, DefaultFeeRate); got != 0 {
		t.Errorf("empty aggregate wear = %v, want 0", got)
	}
}

func TestDayResultsTokensSortedByWearDescending(t *testing.T) {
	sess := newSession(t,
		// AAA: flat round trip, wear = fees only (positive, small).
		domRecord("2025-01-10 12:00:00", "AAA", "BUY", 10, 100),
		domRecord("2025-01-10 12:05:00", "AAA", "SELL", 10, 100),
		// BBB: profitable round trip, negative wear.
		domRecord("2025-01-10 13:00:00", "BBB", "BUY", 10, 100),
		domRecord("2025-01-10 13:05:00", "BBB", "SELL", 10, 110),
		// CCC: costly round trip, large positive wear.
		domRecord("2025-01-10 14:00:00", "CCC", "BUY", 10, 110),
		domRecord("2025-01-10 14:05:00", "CCC", "SELL", 10, 100),
	)
	days := New(Options{}).DayResults(sess)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	got := []string{}
	for _, row := range days[0].Tokens {
		got = append(got, row.Token)
	}
	want := []string{"CCC", "AAA", "BBB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("token order = %v, want %v", got, want)
	}
}

func TestDayResultsEmptySession(t *testing.T) {
	days := New(Options{}).DayResults(store.NewSession(time.UTC))
	if len(days) != 0 {
		t.Errorf("expected no day results for empty session, got %d", len(days))
	}
}

func TestDayResultsSplitsAtCutoff(t *testing.T) {
	sess := newSession(t,
		domRecord("2025-01-10 07:59:59", "KOGE", "BUY", 1, 10),
		domRecord("2025-01-10 08:00:00", "KOGE", "BUY", 2, 20),
	)
	days := New(Options{}).DayResults(sess)
	if len(days) != 2 {
		t.Fatalf("expected records to land in 2 trading days, got %d", len(days))
	}
	if days[0].Day != "2025-01-09" || days[1].Day != "2025-01-10" {
		t.Errorf("unexpected day keys: %s, %s", days[0].Day, days[1].Day)
	}
	if days[0].TotalBuyNotional != 10 || days[1].TotalBuyNotional != 20 {
		t.Errorf("unexpected totals: %v, %v", days[0].TotalBuyNotional, days[1].TotalBuyNotional)
	}
}
