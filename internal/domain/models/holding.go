package models

// Holding is one equity position within a fund portfolio as reported by the
// holdings upstream.
//
// Fields:
//   - CompanyName: company name as published by the fund house.
//   - CorpusPer: share of the fund corpus held in this equity. Weights across a
//     fund are not guaranteed to sum to 1 (or 100).
//   - StockSearchID: optional link to a tradable identifier. Holdings without it
//     (unlisted or unmapped equities) are never resolved.
type Holding struct {
	CompanyName   string  `json:"company_name"`
	CorpusPer     float64 `json:"corpus_per"`
	StockSearchID *string `json:"stock_search_id,omitempty"`
}

// Eligible reports whether the holding carries a search identifier.
func (h Holding) Eligible() bool {
	return h.StockSearchID != nil && *h.StockSearchID != ""
}

// SearchID returns the search identifier or "" when absent.
func (h Holding) SearchID() string {
	if h.StockSearchID == nil {
		return ""
	}
	return *h.StockSearchID
}

// HoldingResult is the per-holding contribution consumed by the fund reducer.
//
// Label is the resolved trading code, or the company name when resolution failed.
// DayChangePercent is 0 for every failure path, so failures dilute the aggregate.
type HoldingResult struct {
	Label            string
	DayChangePercent float64
	CorpusWeight     float64
}
