package engine

import (
	"sort"

	"alpha-trade-tracker/internal/types"
)

// Overview folds per-day results into an all-time rollup. Profit negates
// the accumulated wear, so the sort flips relative to the per-day view:
// tokens that made money come first. The overview's score is taken over
// the summed buy notional of every day.
func Overview(days []types.DayResult) types.OverviewResult {
	byToken := map[string]*types.OverviewToken{}
	res := types.OverviewResult{}
	for _, day := range days {
		res.TotalBuyNotional += day.TotalBuyNotional
		for _, stat := range day.Tokens {
			agg := byToken[stat.Token]
			if agg == nil {
				agg = &types.OverviewToken{Token: stat.Token}
				byToken[stat.Token] = agg
			}
			agg.BuyNotional += stat.BuyNotional
			agg.SellNotional += stat.SellNotional
			agg.Profit -= stat.Wear
		}
	}
	for _, agg := range byToken {
		res.Tokens = append(res.Tokens, *agg)
	}
	sort.Slice(res.Tokens, func(i, j int) bool {
		if res.Tokens[i].Profit != res.Tokens[j].Profit {
			return res.Tokens[i].Profit > res.Tokens[j].Profit
		}
		return res.Tokens[i].Token < res.Tokens[j].Token
	})
	res.Score = ScoreFor(res.TotalBuyNotional)
	return res
}
