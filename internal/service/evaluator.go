package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guttosm/mflive/internal/domain/models"
	"github.com/guttosm/mflive/internal/logger"
	"github.com/guttosm/mflive/internal/upstream"
)

// Evaluator turns one holding into its weighted contribution.
type Evaluator struct {
	resolver CodeResolver
	quotes   QuoteSource
	log      zerolog.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(r CodeResolver, q QuoteSource) *Evaluator {
	return &Evaluator{resolver: r, quotes: q, log: logger.For("evaluator")}
}

// Evaluate resolves h, fetches its day change and returns the contribution plus
// any diagnostics. It never fails: every failure path yields a zero change with
// the holding's full corpus weight.
//
// Paths:
//   - no stock search id: (company, 0, weight), no diagnostics, no network calls.
//   - resolution failed:  (company, 0, weight) + NotFound, preceded by Mismatched
//     when the search returned a differently titled match without a code.
//   - resolved:           (code, change, weight) + Mismatched when titles differ
//     + NotFound when the quote could not be read (change is then 0).
func (e *Evaluator) Evaluate(ctx context.Context, h models.Holding) (models.HoldingResult, []models.Outcome) {
	fallback := models.HoldingResult{Label: h.CompanyName, CorpusWeight: h.CorpusPer}
	if !h.Eligible() {
		return fallback, nil
	}

	res, err := e.resolver.Resolve(ctx, h)

	var outcomes []models.Outcome
	if res.Mismatch {
		outcomes = append(outcomes, models.Outcome{
			Kind:         models.Mismatched,
			CompanyName:  h.CompanyName,
			CorpusWeight: h.CorpusPer,
			MatchedTitle: res.MatchedTitle,
		})
	}
	if err != nil {
		return fallback, append(outcomes, notFound(h, err))
	}

	change, err := e.quotes.DayChange(ctx, res.Code)
	if err != nil {
		e.log.Warn().
			Str("company", h.CompanyName).
			Str("code", res.Code).
			Str("reason", string(upstream.ReasonOf(err))).
			Err(err).
			Msg("quote unavailable")
		outcomes = append(outcomes, notFound(h, err))
		change = 0
	}

	return models.HoldingResult{Label: res.Code, DayChangePercent: change, CorpusWeight: h.CorpusPer}, outcomes
}

func notFound(h models.Holding, err error) models.Outcome {
	return models.Outcome{
		Kind:         models.NotFound,
		CompanyName:  h.CompanyName,
		CorpusWeight: h.CorpusPer,
		Reason:       string(upstream.ReasonOf(err)),
	}
}
