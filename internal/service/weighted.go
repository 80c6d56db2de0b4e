package service

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/mflive/internal/domain/models"
)

// WeightedChange reduces holding results into Σ(weight×change) / Σ(weight).
// ok is false when the total weight is zero; the change is then reported as 0.
func WeightedChange(results []models.HoldingResult) (change float64, ok bool) {
	numerator := decimal.Zero
	denominator := decimal.Zero
	for _, r := range results {
		w := decimal.NewFromFloat(r.CorpusWeight)
		numerator = numerator.Add(w.Mul(decimal.NewFromFloat(r.DayChangePercent)))
		denominator = denominator.Add(w)
	}
	if denominator.IsZero() {
		return 0, false
	}
	return numerator.Div(denominator).InexactFloat64(), true
}
