package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/mflive/internal/domain/models"
)

// MaxFundsPerBatch bounds AggregateMany.
const MaxFundsPerBatch = 5

// ErrInvalidBatch is returned for empty batches or batches above MaxFundsPerBatch.
var ErrInvalidBatch = errors.New("invalid fund batch")

// FundService defines the fund estimation use cases exposed over HTTP and CLI.
//
//go:generate mockgen -package=api -destination=../api/mock_fund_service_test.go -source=funds.go
type FundService interface {
	Aggregate(ctx context.Context, fundID string) (*models.FundResult, error)
	AggregateMany(ctx context.Context, fundIDs []string) ([]models.FundResult, error)
}

type fundService struct {
	agg *Aggregator
}

// NewFundService wraps an Aggregator.
func NewFundService(agg *Aggregator) FundService {
	return &fundService{agg: agg}
}

func (s *fundService) Aggregate(ctx context.Context, fundID string) (*models.FundResult, error) {
	return s.agg.Aggregate(ctx, fundID)
}

// AggregateMany estimates 1..MaxFundsPerBatch funds one after another, in input order.
// A fund whose holdings cannot be fetched is reported with StatusError instead of
// failing the batch. Every fund starts from empty diagnostics.
func (s *fundService) AggregateMany(ctx context.Context, fundIDs []string) ([]models.FundResult, error) {
	if len(fundIDs) == 0 || len(fundIDs) > MaxFundsPerBatch {
		return nil, fmt.Errorf("%w: got %d funds, want 1..%d", ErrInvalidBatch, len(fundIDs), MaxFundsPerBatch)
	}

	out := make([]models.FundResult, 0, len(fundIDs))
	for _, id := range fundIDs {
		res, err := s.agg.Aggregate(ctx, id)
		if err != nil {
			failed := models.NewFundResult(id)
			failed.Status = models.StatusError
			failed.Err = err
			out = append(out, *failed)
			continue
		}
		out = append(out, *res)
	}
	return out, nil
}
