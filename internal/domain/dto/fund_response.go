package dto

import "github.com/guttosm/mflive/internal/domain/models"

// MultiFundRequest is the body of POST /mutual-funds.
type MultiFundRequest struct {
	Funds []string `json:"funds" binding:"required,min=1,max=5,dive,required" example:"quant-small-cap-fund-direct-plan-growth"`
}

// FundResponse represents the JSON structure returned for one fund.
//
// not_matched values are two-element arrays: [matched_title, corpus_weight].
// status is "ok", "no_eligible_holdings" or "error"; error is set only with "error".
type FundResponse struct {
	Fund                string             `json:"fund" example:"quant-small-cap-fund-direct-plan-growth"`
	DayChangePercentage float64            `json:"day_change_percentage" example:"0.8"`
	NotFound            map[string]float64 `json:"not_found"`
	NotMatched          map[string][2]any  `json:"not_matched" swaggertype:"object"`
	Status              string             `json:"status,omitempty" example:"ok"`
	Error               string             `json:"error,omitempty"`
}

// NewFundResponse maps a domain result into its API shape.
func NewFundResponse(r models.FundResult) FundResponse {
	resp := FundResponse{
		Fund:                r.Fund,
		DayChangePercentage: r.DayChangePercentage,
		NotFound:            make(map[string]float64, len(r.NotFound)),
		NotMatched:          make(map[string][2]any, len(r.NotMatched)),
		Status:              string(r.Status),
	}
	for name, w := range r.NotFound {
		resp.NotFound[name] = w
	}
	for name, m := range r.NotMatched {
		resp.NotMatched[name] = [2]any{m.Title, m.CorpusWeight}
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}
