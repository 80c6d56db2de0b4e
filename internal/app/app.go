package app

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mflive/config"
	"github.com/guttosm/mflive/internal/api"
	"github.com/guttosm/mflive/internal/logger"
	"github.com/guttosm/mflive/internal/resolver"
	"github.com/guttosm/mflive/internal/service"
	"github.com/guttosm/mflive/internal/upstream"
)

// Services holds the wired estimation pipeline shared by the API and CLI modes.
type Services struct {
	Funds    service.FundService
	Holdings *upstream.HoldingsClient

	close func()
}

// Close releases pooled upstream connections.
func (s *Services) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewServices wires the upstream clients, resolver, evaluator, aggregator and
// fund service from cfg. Every upstream shares one pooled HTTP client.
func NewServices(cfg config.Config) (*Services, error) {
	if err := validateUpstreams(cfg.Upstream); err != nil {
		return nil, err
	}

	httpClient := upstream.NewPooledHTTPClient(cfg.Upstream.HTTPTimeout)
	opts := []upstream.Option{
		upstream.WithHTTPClient(httpClient),
		upstream.WithTimeout(cfg.Upstream.HTTPTimeout),
	}

	holdings := upstream.NewHoldingsClient(cfg.Upstream.MFSearchURL, opts...)
	search := upstream.NewSearchClient(cfg.Upstream.StockCodeSearchURL, opts...)
	quotes := upstream.NewQuoteClient(cfg.Upstream.NSEStockSearchURL, opts...)

	var resolverOpts []resolver.Option
	if cfg.Engine.SeedEnabled {
		resolverOpts = append(resolverOpts, resolver.WithSeed(resolver.DefaultSeed()))
	}
	codes := resolver.New(search, resolverOpts...)

	eval := service.NewEvaluator(codes, quotes)
	agg := service.NewAggregator(holdings, eval, cfg.Engine.MaxConcurrency)

	logger.L().Info().
		Dur("http_timeout", cfg.Upstream.HTTPTimeout).
		Int("max_concurrency", cfg.Engine.MaxConcurrency).
		Bool("seed_enabled", cfg.Engine.SeedEnabled).
		Msg("estimation pipeline ready")

	return &Services{
		Funds:    service.NewFundService(agg),
		Holdings: holdings,
		close:    httpClient.CloseIdleConnections,
	}, nil
}

// InitializeApp sets up all application dependencies from config.AppConfig and
// returns a fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the estimation pipeline (NewServices).
//   - Creates the HTTP handler layer and the router.
//   - Registers health and readiness probes (readiness pings the holdings upstream).
//   - Provides a cleanup function that releases pooled connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svcs, err := NewServices(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	handler := api.NewHandler(svcs.Funds)
	router := api.NewRouter(handler, api.RouterConfig{
		DomainURL:          cfg.Server.DomainURL,
		RequestTimeout:     cfg.Server.RequestTimeout,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	api.NewHealthHandler(svcs.Holdings.Ping).Register(router)

	return router, svcs.Close, nil
}

// validateUpstreams rejects endpoint settings that would fail on every call.
func validateUpstreams(u config.UpstreamConfig) error {
	var errs []error
	for name, raw := range map[string]string{
		"MF_SEARCH_URL":         u.MFSearchURL,
		"STOCK_CODE_SEARCH_URL": u.StockCodeSearchURL,
		"NSE_STOCK_SEARCH_URL":  u.NSEStockSearchURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, fmt.Errorf("%s: %q is not an absolute URL", name, raw))
		}
	}
	if !slices.ContainsFunc(upstream.CodePlaceholders, func(p string) bool {
		return strings.Contains(u.NSEStockSearchURL, p)
	}) {
		errs = append(errs, fmt.Errorf("NSE_STOCK_SEARCH_URL: %q has no {stock_code} placeholder", u.NSEStockSearchURL))
	}
	return errors.Join(errs...)
}
