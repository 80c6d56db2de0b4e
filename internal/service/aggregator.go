package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/mflive/internal/domain/models"
	"github.com/guttosm/mflive/internal/logger"
)

// ErrHoldingsUnavailable wraps every failure to fetch or decode a fund's holdings.
var ErrHoldingsUnavailable = errors.New("fund holdings unavailable")

// DefaultMaxConcurrency caps concurrent holding evaluations when none is configured.
const DefaultMaxConcurrency = 16

// Aggregator estimates the day change of a single fund.
type Aggregator struct {
	holdings       HoldingsSource
	eval           *Evaluator
	maxConcurrency int
	log            zerolog.Logger
}

// NewAggregator creates an Aggregator. maxConcurrency < 1 selects DefaultMaxConcurrency.
func NewAggregator(holdings HoldingsSource, eval *Evaluator, maxConcurrency int) *Aggregator {
	if maxConcurrency < 1 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Aggregator{
		holdings:       holdings,
		eval:           eval,
		maxConcurrency: maxConcurrency,
		log:            logger.For("aggregator"),
	}
}

// Aggregate fetches the holdings of fundID, evaluates them concurrently and
// reduces them into a corpus weighted day change.
//
// Behavior:
//   - A holdings fetch failure is returned wrapped in ErrHoldingsUnavailable.
//   - Holding level failures never fail the fund; they show up in NotFound/NotMatched.
//   - All evaluations complete before the reduction; diagnostics are merged
//     afterwards, so nothing is shared between goroutines but their own slot.
//   - Zero total weight yields 0 with StatusNoEligibleHoldings.
func (a *Aggregator) Aggregate(ctx context.Context, fundID string) (*models.FundResult, error) {
	start := time.Now()

	holdings, err := a.holdings.Holdings(ctx, fundID)
	if err != nil {
		a.log.Error().Str("fund", fundID).Err(err).Msg("holdings fetch failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrHoldingsUnavailable, fundID, err)
	}

	results := make([]models.HoldingResult, len(holdings))
	outcomes := make([][]models.Outcome, len(holdings))

	var g errgroup.Group
	g.SetLimit(a.maxConcurrency)
	for i, h := range holdings {
		g.Go(func() error {
			results[i], outcomes[i] = a.eval.Evaluate(ctx, h)
			return nil
		})
	}
	_ = g.Wait() // evaluations never return an error

	out := models.NewFundResult(fundID)
	for _, per := range outcomes {
		for _, o := range per {
			out.Record(o)
		}
	}

	change, ok := WeightedChange(results)
	out.DayChangePercentage = change
	if !ok {
		out.Status = models.StatusNoEligibleHoldings
	}

	a.log.Info().
		Str("fund", fundID).
		Int("holdings", len(holdings)).
		Int("not_found", len(out.NotFound)).
		Int("not_matched", len(out.NotMatched)).
		Float64("day_change_percentage", change).
		Str("status", string(out.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("fund estimated")

	return out, nil
}
