package store

import (
	"time"

	"alpha-trade-tracker/internal/parse"
	"alpha-trade-tracker/internal/types"
)

// Session holds the canonical raw records collected in one scraping run.
// API-sourced records upsert into a keyed map; DOM-sourced rows have no
// stable upstream identifier and are appended as-is. A session is never
// merged forward: abandon it by creating a fresh one.
//
// Merge is the only mutator and the collection driver is expected to
// serialize calls into it; the session itself takes no locks.
type Session struct {
	loc      *time.Location
	api      map[string]types.RawTradeRecord
	apiOrder []string
	dom      []types.RawTradeRecord
}

// NewSession creates an empty session. Timestamps are interpreted in loc;
// nil falls back to the process-local zone.
func NewSession(loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		loc: loc,
		api: map[string]types.RawTradeRecord{},
	}
}

// Location returns the timezone the session's timestamps are read in.
func (s *Session) Location() *time.Location { return s.loc }

// Merge appends a batch of raw records under the given provenance.
// Malformed records (unresolvable side, unparseable timestamp, non-filled
// status) are dropped here so they never reach aggregation. Merge never
// fails; bad input is a degradation, not an error.
func (s *Session) Merge(records []types.RawTradeRecord, prov types.Provenance) {
	for _, r := range records {
		if !s.eligible(r) {
			continue
		}
		r.Provenance = prov
		switch prov {
		case types.ProvenanceAPI:
			key := r.ExternalID + "_" + r.Timestamp
			if _, seen := s.api[key]; !seen {
				s.apiOrder = append(s.apiOrder, key)
			}
			s.api[key] = r
		default:
			s.dom = append(s.dom, r)
		}
	}
}

func (s *Session) eligible(r types.RawTradeRecord) bool {
	if parse.ParseSide(r.SideRaw) == parse.SideUnknown {
		return false
	}
	if parse.ParseStatus(r.StatusRaw) != parse.StatusFilled {
		return false
	}
	if _, ok := parse.ParseTimestamp(r.Timestamp, s.loc); !ok {
		return false
	}
	return true
}

// DOM returns the scraped table rows, the only records that feed scoring:
// they are what the page itself shows, so totals reconcile with what the
// user sees. The slice is shared; callers must not mutate it.
func (s *Session) DOM() []types.RawTradeRecord { return s.dom }

// API returns intercepted API records in first-seen key order. Kept for
// diagnostics and reconciliation, excluded from the scoring path.
func (s *Session) API() []types.RawTradeRecord {
	out := make([]types.RawTradeRecord, 0, len(s.apiOrder))
	for _, k := range s.apiOrder {
		out = append(out, s.api[k])
	}
	return out
}

// Len reports the total number of retained records.
func (s *Session) Len() int { return len(s.api) + len(s.dom) }
