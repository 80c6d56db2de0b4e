package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guttosm/mflive/internal/domain/models"
	"github.com/guttosm/mflive/internal/logger"
	"github.com/guttosm/mflive/internal/upstream"
)

// ErrIneligible is returned for holdings without a stock search id.
var ErrIneligible = errors.New("holding has no stock search id")

// Searcher is the fuzzy company search upstream.
type Searcher interface {
	Search(ctx context.Context, query string) (upstream.Match, error)
}

// Resolution is a trading code found for a holding.
//
// Mismatch is set when the search title differs (case-insensitively) from the
// holding's company name; the code is still meant to be used.
type Resolution struct {
	Code         string
	MatchedTitle string
	Mismatch     bool
	FromSeed     bool
}

// Resolver maps holdings to NSE trading codes.
type Resolver struct {
	search Searcher
	seed   map[string]string
	log    zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSeed enables the static seed table as a lookup before the fuzzy search.
func WithSeed(seed map[string]string) Option {
	return func(r *Resolver) {
		r.seed = seed
	}
}

// New creates a Resolver backed by search.
func New(search Searcher, options ...Option) *Resolver {
	r := &Resolver{search: search, log: logger.For("resolver")}
	for _, option := range options {
		option(r)
	}
	return r
}

// Resolve finds the trading code of h.
//
// Errors:
//   - ErrIneligible when h has no stock search id (no network call is made).
//   - an *upstream.Error when the search fails or returns no usable match. If
//     the search did return a title, the Resolution still reports it and its
//     Mismatch flag.
func (r *Resolver) Resolve(ctx context.Context, h models.Holding) (Resolution, error) {
	if !h.Eligible() {
		return Resolution{}, ErrIneligible
	}

	if code, ok := r.seed[h.SearchID()]; ok {
		return Resolution{Code: code, MatchedTitle: h.CompanyName, FromSeed: true}, nil
	}

	query := Sanitize(h.CompanyName)
	match, err := r.search.Search(ctx, query)
	res := Resolution{Code: match.Code, MatchedTitle: match.Title}
	if match.Title != "" && !strings.EqualFold(match.Title, h.CompanyName) {
		res.Mismatch = true
	}
	if err != nil {
		r.log.Warn().
			Str("company", h.CompanyName).
			Str("query", query).
			Str("reason", string(upstream.ReasonOf(err))).
			Err(err).
			Msg("code lookup failed")
		return res, fmt.Errorf("resolve %q: %w", h.CompanyName, err)
	}

	if res.Mismatch {
		r.log.Debug().
			Str("company", h.CompanyName).
			Str("matched", match.Title).
			Str("code", match.Code).
			Msg("search title differs from company name")
	}
	return res, nil
}
