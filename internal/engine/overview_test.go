package engine

import (
	"math"
	"testing"
)

func TestOverviewConsistency(t *testing.T) {
	sess := newSession(t,
		// Day 2025-01-10: KOGE round trip, BR buy-only.
		domRecord("2025-01-10 12:00:00", "KOGE", "BUY", 60, 600),
		domRecord("2025-01-10 13:00:00", "KOGE", "BUY", 40, 400),
		domRecord("2025-01-10 14:00:00", "KOGE", "SELL", 50, 550),
		domRecord("2025-01-10 15:00:00", "BR", "BUY", 10, 100),
		// Day 2025-01-11: more KOGE.
		domRecord("2025-01-11 12:00:00", "KOGE", "BUY", 10, 120),
		domRecord("2025-01-11 13:00:00", "KOGE", "SELL", 10, 100),
	)
	eng := New(Options{})
	days := eng.DayResults(sess)
	if len(days) != 2 {
		t.Fatalf("expected 2 trading days, got %d", len(days))
	}

	overview := Overview(days)

	var wantTotal float64
	wantBuyByToken := map[string]float64{}
	wantWearByToken := map[string]float64{}
	for _, day := range days {
		wantTotal += day.TotalBuyNotional
		for _, row := range day.Tokens {
			wantBuyByToken[row.Token] += row.BuyNotional
			wantWearByToken[row.Token] += row.Wear
		}
	}

	if math.Abs(overview.TotalBuyNotional-wantTotal) > 1e-9 {
		t.Errorf("overview total %v, want %v", overview.TotalBuyNotional, wantTotal)
	}
	if len(overview.Tokens) != len(wantBuyByToken) {
		t.Fatalf("expected %d tokens, got %d", len(wantBuyByToken), len(overview.Tokens))
	}
	for _, tok := range overview.Tokens {
		if math.Abs(tok.BuyNotional-wantBuyByToken[tok.Token]) > 1e-9 {
			t.Errorf("%s buy notional %v, want %v", tok.Token, tok.BuyNotional, wantBuyByToken[tok.Token])
		}
		if math.Abs(tok.Profit-(-wantWearByToken[tok.Token])) > 1e-9 {
			t.Errorf("%s profit %v, want %v", tok.Token, tok.Profit, -wantWearByToken[tok.Token])
		}
	}

	if overview.Score.Score != ScoreFor(wantTotal).Score {
		t.Errorf("overview score %d, want %d", overview.Score.Score, ScoreFor(wantTotal).Score)
	}
}

func TestOverviewSortedByProfitDescending(t *testing.T) {
	sess := newSession(t,
		// WIN: sold above buy average, profit positive.
		domRecord("2025-01-10 12:00:00", "WIN", "BUY", 10, 100),
		domRecord("2025-01-10 13:00:00", "WIN", "SELL", 10, 120),
		// LOSE: sold below buy average, profit negative.
		domRecord("2025-01-10 12:00:00", "LOSE", "BUY", 10, 120),
		domRecord("2025-01-10 13:00:00", "LOSE", "SELL", 10, 100),
	)
	overview := Overview(New(Options{}).DayResults(sess))
	if len(overview.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(overview.Tokens))
	}
	if overview.Tokens[0].Token != "WIN" || overview.Tokens[1].Token != "LOSE" {
		t.Errorf("expected WIN before LOSE, got %s, %s",
			overview.Tokens[0].Token, overview.Tokens[1].Token)
	}
	if overview.Tokens[0].Profit <= 0 {
		t.Errorf("expected positive profit for WIN, got %v", overview.Tokens[0].Profit)
	}
	if overview.Tokens[1].Profit >= 0 {
		t.Errorf("expected negative profit for LOSE, got %v", overview.Tokens[1].Profit)
	}
}

func TestOverviewEmpty(t *testing.T) {
	overview := Overview(nil)
	if len(overview.Tokens) != 0 || overview.TotalBuyNotional != 0 {
		t.Errorf("expected empty overview, got %+v", overview)
	}
	if overview.Score.Score != 0 {
		t.Errorf("expected score 0 for empty overview, got %d", overview.Score.Score)
	}
}
