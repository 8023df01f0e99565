package engine

import "alpha-trade-tracker/internal/types"

// DefaultFeeRate is the per-leg transaction fee applied to notional.
const DefaultFeeRate = 0.0001

// Wear prices the cost of a token's round trips within one trading day:
// realized slippage on the matched quantity plus both legs' fees. It is
// deliberately unclamped; a sell side executed above the buy average yields
// a negative wear (net price-improvement exceeding fees).
//
// With activity on only one side there is nothing matched to price, so the
// whole buy-side exposure is treated as at-risk cost; a pure sell day
// costs nothing.
func Wear(agg types.TokenDayAggregate, feeRate float64) float64 {
	var avgBuy, avgSell float64
	if agg.BuyQty > 0 {
		avgBuy = agg.BuyNotional / agg.BuyQty
	}
	if agg.SellQty > 0 {
		avgSell = agg.SellNotional / agg.SellQty
	}

	matched := agg.BuyQty
	if agg.SellQty < matched {
		matched = agg.SellQty
	}

	if matched > 0 && avgBuy > 0 && avgSell > 0 {
		return matched*(avgBuy-avgSell) + agg.BuyNotional*feeRate + agg.SellNotional*feeRate
	}
	if agg.BuyNotional == 0 {
		return 0
	}
	return agg.BuyNotional - agg.SellNotional + agg.BuyNotional*feeRate
}
