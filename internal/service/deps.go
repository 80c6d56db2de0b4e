package service

import (
	"context"

	"github.com/guttosm/mflive/internal/domain/models"
	"github.com/guttosm/mflive/internal/resolver"
)

// HoldingsSource fetches the holdings of a fund.
//
//go:generate mockgen -package=service -destination=mock_deps_test.go -source=deps.go
type HoldingsSource interface {
	Holdings(ctx context.Context, fundID string) ([]models.Holding, error)
}

// CodeResolver maps a holding to a trading code.
type CodeResolver interface {
	Resolve(ctx context.Context, h models.Holding) (resolver.Resolution, error)
}

// QuoteSource returns the live day change percentage of a trading code.
type QuoteSource interface {
	DayChange(ctx context.Context, code string) (float64, error)
}
