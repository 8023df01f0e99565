package engine

import (
	"sort"

	"alpha-trade-tracker/internal/parse"
	"alpha-trade-tracker/internal/store"
	"alpha-trade-tracker/internal/types"
)

// Options configures one engine instance. Zero values pick the production
// defaults (8:00 cutoff, 1bp fee, ALPHA tokens included).
type Options struct {
	ExcludeAlphaTokens bool
	FeeRate            float64
	CutoffHour         int
}

// Engine computes per-day and overview summaries from a session snapshot.
// Every derived structure is a pure function of the session's DOM records;
// nothing here mutates the session or holds state between calls.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	if opts.FeeRate == 0 {
		opts.FeeRate = DefaultFeeRate
	}
	if opts.CutoffHour == 0 {
		opts.CutoffHour = DefaultCutoffHour
	}
	return &Engine{opts: opts}
}

// Aggregate folds eligible DOM records into (tradingDay, token) cells.
// Accumulation is a plain sum, so any ordering of the input batches yields
// the same cells. Records the session could not validate never get here;
// the day and token guards repeat cheaply for callers holding hand-built
// sessions.
func (e *Engine) Aggregate(sess *store.Session) map[string]map[string]*types.TokenDayAggregate {
	days := map[string]map[string]*types.TokenDayAggregate{}
	for _, r := range sess.DOM() {
		t, ok := parse.ParseTimestamp(r.Timestamp, sess.Location())
		if !ok {
			continue
		}
		side := parse.ParseSide(r.SideRaw)
		if side == parse.SideUnknown {
			continue
		}
		token := parse.NormalizeToken(r.SymbolRaw, r.ExecutedQtyText)
		if e.opts.ExcludeAlphaTokens && parse.IsAlphaToken(token) {
			continue
		}
		day := TradingDayOf(t, e.opts.CutoffHour)
		cells := days[day]
		if cells == nil {
			cells = map[string]*types.TokenDayAggregate{}
			days[day] = cells
		}
		cell := cells[token]
		if cell == nil {
			cell = &types.TokenDayAggregate{}
			cells[token] = cell
		}
		if side == parse.SideBuy {
			cell.BuyQty += r.ExecutedQty
			cell.BuyNotional += r.QuoteNotional
		} else {
			cell.SellQty += r.ExecutedQty
			cell.SellNotional += r.QuoteNotional
		}
	}
	return days
}

// DayResults computes one result per trading day, tokens sorted by wear
// descending (costliest first), days sorted ascending by date. A session
// with no eligible records yields an empty slice, which is a valid state.
func (e *Engine) DayResults(sess *store.Session) []types.DayResult {
	days := e.Aggregate(sess)
	out := make([]types.DayResult, 0, len(days))
	for day, cells := range days {
		res := types.DayResult{Day: day}
		for token, cell := range cells {
			res.Tokens = append(res.Tokens, types.TokenDayStat{
				Token:        token,
				BuyNotional:  cell.BuyNotional,
				SellNotional: cell.SellNotional,
				Wear:         Wear(*cell, e.opts.FeeRate),
			})
			res.TotalBuyNotional += cell.BuyNotional
		}
		sort.Slice(res.Tokens, func(i, j int) bool {
			if res.Tokens[i].Wear != res.Tokens[j].Wear {
				return res.Tokens[i].Wear > res.Tokens[j].Wear
			}
			return res.Tokens[i].Token < res.Tokens[j].Token
		})
		res.Score = ScoreFor(res.TotalBuyNotional)
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
