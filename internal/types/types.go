package types

// Provenance tags where a raw record was captured from.
type Provenance string

const (
	ProvenanceAPI Provenance = "api"
	ProvenanceDOM Provenance = "dom"
)

// RawTradeRecord is one execution as reported by a producer, before any
// classification or bucketing. Timestamp is kept verbatim (epoch value or
// locale string) because the API dedup key uses the upstream text as-is.
type RawTradeRecord struct {
	Provenance      Provenance `json:"provenance"`
	ExternalID      string     `json:"external_id,omitempty"`
	Timestamp       string     `json:"timestamp"`
	SymbolRaw       string     `json:"symbol"`
	SideRaw         string     `json:"side"`
	StatusRaw       string     `json:"status"`
	ExecutedQty     float64    `json:"executed_qty"`
	ExecutedQtyText string     `json:"executed_qty_text,omitempty"`
	QuoteNotional   float64    `json:"quote_notional"`
}

// TokenDayAggregate accumulates fills for one token within one trading day.
type TokenDayAggregate struct {
	BuyQty       float64
	BuyNotional  float64
	SellQty      float64
	SellNotional float64
}

// TokenDayStat is one row of a day result.
type TokenDayStat struct {
	Token        string  `json:"token"`
	BuyNotional  float64 `json:"buy_notional"`
	SellNotional float64 `json:"sell_notional"`
	Wear         float64 `json:"wear"`
}

// DayResult summarizes one trading day (08:00 to next 08:00 local).
type DayResult struct {
	Day              string         `json:"day"`
	Tokens           []TokenDayStat `json:"tokens"`
	TotalBuyNotional float64        `json:"total_buy_notional"`
	Score            TierScore      `json:"score"`
}

// Tier is one step of the volume score table.
type Tier struct {
	Volume float64 `json:"volume"`
	Score  int     `json:"score"`
}

// TierScore is the step-function score for a cumulative buy volume, with the
// reached tier, the next one to chase, and the volume gap to it.
type TierScore struct {
	Score       int     `json:"score"`
	CurrentTier *Tier   `json:"current_tier,omitempty"`
	NextTier    *Tier   `json:"next_tier,omitempty"`
	Gap         float64 `json:"gap"`
}

// OverviewToken is one token's all-time rollup. Profit is the negated wear
// sum, so a profitable token carries a positive figure.
type OverviewToken struct {
	Token        string  `json:"token"`
	BuyNotional  float64 `json:"buy_notional"`
	SellNotional float64 `json:"sell_notional"`
	Profit       float64 `json:"profit"`
}

// OverviewResult folds all trading days of a session into one summary.
type OverviewResult struct {
	Tokens           []OverviewToken `json:"tokens"`
	TotalBuyNotional float64         `json:"total_buy_notional"`
	Score            TierScore       `json:"score"`
}
