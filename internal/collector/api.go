package collector

import (
	"encoding/json"
	"strconv"

	"alpha-trade-tracker/internal/parse"
	"alpha-trade-tracker/internal/types"
)

// NormalizeAPIPayload maps an intercepted order-history API response onto
// raw trade records. Different endpoints wrap the order array differently
// (data, list, rows, orders) and name fields inconsistently, so both the
// envelope and the per-order fields are resolved through fallback chains.
func NormalizeAPIPayload(payload []byte) ([]types.RawTradeRecord, error) {
	var root any
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, err
	}
	list := extractOrderList(root)
	records := make([]types.RawTradeRecord, 0, len(list))
	for _, item := range list {
		order, ok := item.(map[string]any)
		if !ok {
			continue
		}
		records = append(records, mapOrder(order))
	}
	return records, nil
}

// extractOrderList digs the order array out of an API envelope.
func extractOrderList(root any) []any {
	switch v := root.(type) {
	case []any:
		return v
	case map[string]any:
		if data, ok := v["data"]; ok {
			if list := extractOrderList(data); list != nil {
				return list
			}
		}
		for _, key := range []string{"list", "rows", "orders"} {
			if arr, ok := v[key].([]any); ok {
				return arr
			}
		}
		// Last resort: the first array-of-objects value anywhere in the
		// envelope is assumed to be the orders.
		for _, val := range v {
			if arr, ok := val.([]any); ok && len(arr) > 0 {
				if _, isObj := arr[0].(map[string]any); isObj {
					return arr
				}
			}
		}
	}
	return nil
}

func mapOrder(order map[string]any) types.RawTradeRecord {
	return types.RawTradeRecord{
		Provenance:    types.ProvenanceAPI,
		ExternalID:    stringField(order, "orderId", "id"),
		Timestamp:     stringField(order, "updateTime", "time", "transactTime"),
		SymbolRaw:     stringField(order, "symbol"),
		SideRaw:       stringField(order, "side"),
		StatusRaw:     stringField(order, "status"),
		ExecutedQty:   numberField(order, "executedQty", "origQty"),
		QuoteNotional: numberField(order, "cummulativeQuoteQty", "quoteQty"),
	}
}

// stringField returns the first present key, stringified. Epoch timestamps
// arrive as JSON numbers and must keep their integer form since dedup keys
// use the verbatim value.
func stringField(order map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := order[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

// numberField returns the first present key as a float; the API reports
// quantities both as numbers and as formatted strings.
func numberField(order map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := order[key].(type) {
		case float64:
			return v
		case string:
			if v != "" {
				return parse.ParseNumber(v)
			}
		}
	}
	return 0
}
