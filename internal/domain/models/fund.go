package models

// FundStatus classifies how a fund estimate was produced.
type FundStatus string

const (
	// StatusOK marks a regular weighted estimate.
	StatusOK FundStatus = "ok"
	// StatusNoEligibleHoldings marks a fund whose total corpus weight is zero
	// (no holdings, or all weights zero). The percentage is reported as 0.
	StatusNoEligibleHoldings FundStatus = "no_eligible_holdings"
	// StatusError marks a fund whose holdings could not be fetched.
	StatusError FundStatus = "error"
)

// MatchedTitle pairs the search title a company was matched to with its weight.
// It marshals as a two-element JSON array: ["Matched Title", 0.1].
type MatchedTitle struct {
	Title        string
	CorpusWeight float64
}

// FundResult is the live estimate for one fund.
//
// NotFound maps company name to corpus weight for holdings that contributed
// zero movement. NotMatched maps company name to the differently named search
// match that was used anyway. Both maps belong to a single fund evaluation.
type FundResult struct {
	Fund                string
	DayChangePercentage float64
	NotFound            map[string]float64
	NotMatched          map[string]MatchedTitle
	Status              FundStatus
	Err                 error
}

// NewFundResult returns an empty result with initialized diagnostic maps.
func NewFundResult(fund string) *FundResult {
	return &FundResult{
		Fund:       fund,
		NotFound:   map[string]float64{},
		NotMatched: map[string]MatchedTitle{},
		Status:     StatusOK,
	}
}

// Record merges one outcome into the fund diagnostics.
func (r *FundResult) Record(o Outcome) {
	switch o.Kind {
	case NotFound:
		r.NotFound[o.CompanyName] = o.CorpusWeight
	case Mismatched:
		r.NotMatched[o.CompanyName] = MatchedTitle{Title: o.MatchedTitle, CorpusWeight: o.CorpusWeight}
	}
}
