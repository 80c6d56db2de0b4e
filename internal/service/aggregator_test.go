package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guttosm/mflive/internal/domain/models"
	"github.com/guttosm/mflive/internal/resolver"
	"github.com/guttosm/mflive/internal/upstream"
)

// stubMarket resolves holdings and prices codes from fixed tables.
type stubMarket struct {
	codes  map[string]resolver.Resolution // by company name
	quotes map[string]float64             // by code

	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32

	mu       sync.Mutex
	resolved []string
}

func (s *stubMarket) Resolve(_ context.Context, h models.Holding) (resolver.Resolution, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	s.resolved = append(s.resolved, h.CompanyName)
	s.mu.Unlock()

	res, ok := s.codes[h.CompanyName]
	if !ok {
		return resolver.Resolution{}, &upstream.Error{Op: "search", Reason: upstream.ReasonNotFound, Err: errors.New("no match")}
	}
	return res, nil
}

func (s *stubMarket) DayChange(_ context.Context, code string) (float64, error) {
	q, ok := s.quotes[code]
	if !ok {
		return 0, &upstream.Error{Op: "quote", Reason: upstream.ReasonStatus, Err: errors.New("503")}
	}
	return q, nil
}

func TestAggregate_WeightedScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockHoldingsSource(ctrl)
	src.EXPECT().Holdings(gomock.Any(), "balanced-fund").Return([]models.Holding{
		holding("Alpha Ltd", "alpha-ltd", 0.6),
		holding("Beta Ltd", "beta-ltd", 0.4),
	}, nil).Times(1)

	m := &stubMarket{
		codes: map[string]resolver.Resolution{
			"Alpha Ltd": {Code: "ALPHA", MatchedTitle: "Alpha Ltd"},
			"Beta Ltd":  {Code: "BETA", MatchedTitle: "Beta Ltd"},
		},
		quotes: map[string]float64{"ALPHA": 2.0, "BETA": -1.0},
	}

	out, err := NewAggregator(src, NewEvaluator(m, m), 4).Aggregate(context.Background(), "balanced-fund")
	require.NoError(t, err)
	require.Equal(t, "balanced-fund", out.Fund)
	require.Equal(t, 0.8, out.DayChangePercentage)
	require.Equal(t, models.StatusOK, out.Status)
	require.Empty(t, out.NotFound)
	require.Empty(t, out.NotMatched)
}

func TestAggregate_AllResolutionsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockHoldingsSource(ctrl)
	src.EXPECT().Holdings(gomock.Any(), "ghost-fund").Return([]models.Holding{
		holding("One Ltd", "one-ltd", 0.25),
		holding("Two Ltd", "two-ltd", 0.35),
		holding("Three Ltd", "three-ltd", 0.40),
	}, nil)

	m := &stubMarket{}
	out, err := NewAggregator(src, NewEvaluator(m, m), 0).Aggregate(context.Background(), "ghost-fund")
	require.NoError(t, err)
	require.Equal(t, 0.0, out.DayChangePercentage)
	require.Equal(t, models.StatusOK, out.Status)
	require.Equal(t, map[string]float64{"One Ltd": 0.25, "Two Ltd": 0.35, "Three Ltd": 0.40}, out.NotFound)
}

func TestAggregate_MixedDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockHoldingsSource(ctrl)
	src.EXPECT().Holdings(gomock.Any(), "flexi").Return([]models.Holding{
		holding("Reliance Industries Ltd", "reliance-industries-ltd", 0.10),
		holding("Jio Financial Services Ltd", "jio-financial-services-ltd", 0.10),
		holding("Delisted Ltd", "delisted-ltd", 0.05),
		holding("Unlisted Co", "", 0.05),
	}, nil)

	m := &stubMarket{
		codes: map[string]resolver.Resolution{
			"Reliance Industries Ltd":    {Code: "RELIANCE", MatchedTitle: "Reliance Industries Ltd"},
			"Jio Financial Services Ltd": {Code: "JIOFIN", MatchedTitle: "Jio Financial Svcs Ltd", Mismatch: true},
		},
		quotes: map[string]float64{"RELIANCE": 1.5, "JIOFIN": 3.0},
	}

	out, err := NewAggregator(src, NewEvaluator(m, m), 2).Aggregate(context.Background(), "flexi")
	require.NoError(t, err)
	// (0.10*1.5 + 0.10*3.0 + 0.05*0 + 0.05*0) / 0.30
	require.InDelta(t, 1.5, out.DayChangePercentage, 1e-12)
	require.Equal(t, map[string]float64{"Delisted Ltd": 0.05}, out.NotFound)
	require.Equal(t, map[string]models.MatchedTitle{
		"Jio Financial Services Ltd": {Title: "Jio Financial Svcs Ltd", CorpusWeight: 0.10},
	}, out.NotMatched)
	require.NotContains(t, m.resolved, "Unlisted Co")
}

func TestAggregate_HoldingsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockHoldingsSource(ctrl)
	cause := &upstream.Error{Op: "holdings", Reason: upstream.ReasonMalformed, Err: errors.New("missing holdings field")}
	src.EXPECT().Holdings(gomock.Any(), "broken").Return(nil, cause)

	m := &stubMarket{}
	out, err := NewAggregator(src, NewEvaluator(m, m), 2).Aggregate(context.Background(), "broken")
	require.Nil(t, out)
	require.ErrorIs(t, err, ErrHoldingsUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, upstream.ReasonMalformed, upstream.ReasonOf(err))
}

func TestAggregate_NoEligibleHoldings(t *testing.T) {
	cases := []struct {
		name     string
		holdings []models.Holding
	}{
		{name: "empty portfolio", holdings: []models.Holding{}},
		{name: "zero weights", holdings: []models.Holding{holding("Cash Ltd", "", 0), holding("Alpha Ltd", "alpha-ltd", 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src := NewMockHoldingsSource(ctrl)
			src.EXPECT().Holdings(gomock.Any(), "degenerate").Return(tc.holdings, nil)

			m := &stubMarket{codes: map[string]resolver.Resolution{"Alpha Ltd": {Code: "ALPHA", MatchedTitle: "Alpha Ltd"}}, quotes: map[string]float64{"ALPHA": 5}}
			out, err := NewAggregator(src, NewEvaluator(m, m), 2).Aggregate(context.Background(), "degenerate")
			require.NoError(t, err)
			require.Equal(t, 0.0, out.DayChangePercentage)
			require.Equal(t, models.StatusNoEligibleHoldings, out.Status)
		})
	}
}

func TestAggregate_ConcurrencyCap(t *testing.T) {
	holdings := make([]models.Holding, 0, 12)
	codes := map[string]resolver.Resolution{}
	for i := 0; i < 12; i++ {
		name := string(rune('A'+i)) + " Ltd"
		holdings = append(holdings, holding(name, name, 1))
		codes[name] = resolver.Resolution{Code: name, MatchedTitle: name}
	}

	ctrl := gomock.NewController(t)
	src := NewMockHoldingsSource(ctrl)
	src.EXPECT().Holdings(gomock.Any(), "wide").Return(holdings, nil)

	m := &stubMarket{codes: codes, quotes: map[string]float64{}, delay: 15 * time.Millisecond}
	out, err := NewAggregator(src, NewEvaluator(m, m), 3).Aggregate(context.Background(), "wide")
	require.NoError(t, err)
	require.Len(t, m.resolved, 12, "every holding is evaluated")
	require.LessOrEqual(t, m.peak.Load(), int32(3))
	require.Greater(t, m.peak.Load(), int32(1), "holdings are evaluated concurrently")
	require.Len(t, out.NotFound, 12, "quotes are missing for every code")
}
