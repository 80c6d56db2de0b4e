package config

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream market-data endpoints.
//
// Example ENV equivalent:
//
//	PORT=5001
//	DOMAIN_URL=https://mflive.example.com
//	MF_SEARCH_URL=https://api.example.com/mf/search/scheme
//	STOCK_CODE_SEARCH_URL=https://api.example.com/search/entity
//	NSE_STOCK_SEARCH_URL=https://api.example.com/prices/NSE/{stock_code}
//	BSE_STOCK_SEARCH_URL=https://api.example.com/prices/BSE/{stock_code}
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Third-party market data endpoints
	Engine   EngineConfig   // Fund aggregation tuning
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (default 5001).
//   - DomainURL: public site URL; unmatched routes redirect here.
//   - RequestTimeout: deadline applied to every inbound request.
//   - RateLimitPerMinute: inbound requests allowed per client IP per minute.
type ServerConfig struct {
	Port               string
	DomainURL          string
	RequestTimeout     time.Duration
	RateLimitPerMinute int
}

// UpstreamConfig defines the external endpoints the estimator depends on.
//
// Fields:
//   - MFSearchURL: fund holdings endpoint base, queried as GET <base>/<fund_id>.
//   - StockCodeSearchURL: fuzzy company-name search endpoint.
//   - NSEStockSearchURL: live quote endpoint template with a {stock_code} placeholder ({code} and {} also work).
//   - BSEStockSearchURL: declared fallback quote template, not consulted yet.
//   - HTTPTimeout: deadline for a single upstream call.
type UpstreamConfig struct {
	MFSearchURL        string
	StockCodeSearchURL string
	NSEStockSearchURL  string
	BSEStockSearchURL  string
	HTTPTimeout        time.Duration
}

// EngineConfig tunes how holdings are evaluated.
type EngineConfig struct {
	MaxConcurrency int  // cap on concurrent holding evaluations within one fund
	SeedEnabled    bool // consult the static seed map before the fuzzy search
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, the app terminates listing every
//     missing key (see missingKeys).
func LoadConfig() {
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("REQUEST_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.SetDefault("MAX_CONCURRENCY", 16)
	viper.SetDefault("STOCK_SEED_ENABLED", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("PORT"),
			DomainURL:          viper.GetString("DOMAIN_URL"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Upstream: UpstreamConfig{
			MFSearchURL:        viper.GetString("MF_SEARCH_URL"),
			StockCodeSearchURL: viper.GetString("STOCK_CODE_SEARCH_URL"),
			NSEStockSearchURL:  viper.GetString("NSE_STOCK_SEARCH_URL"),
			BSEStockSearchURL:  viper.GetString("BSE_STOCK_SEARCH_URL"),
			HTTPTimeout:        viper.GetDuration("HTTP_TIMEOUT"),
		},
		Engine: EngineConfig{
			MaxConcurrency: viper.GetInt("MAX_CONCURRENCY"),
			SeedEnabled:    viper.GetBool("STOCK_SEED_ENABLED"),
		},
	}

	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

// missingKeys lists the environment keys whose values are required but empty or invalid.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "PORT")
	}
	if cfg.Server.DomainURL == "" {
		missing = append(missing, "DOMAIN_URL")
	}
	if cfg.Upstream.MFSearchURL == "" {
		missing = append(missing, "MF_SEARCH_URL")
	}
	if cfg.Upstream.StockCodeSearchURL == "" {
		missing = append(missing, "STOCK_CODE_SEARCH_URL")
	}
	if cfg.Upstream.NSEStockSearchURL == "" {
		missing = append(missing, "NSE_STOCK_SEARCH_URL")
	}
	if cfg.Upstream.HTTPTimeout <= 0 {
		missing = append(missing, "HTTP_TIMEOUT")
	}
	if cfg.Engine.MaxConcurrency < 1 {
		missing = append(missing, "MAX_CONCURRENCY")
	}
	return missing
}

// ContactEmail derives the support address from the domain URL host,
// e.g. https://mflive.example.com/ -> mf-live@mflive.example.com.
func (c ServerConfig) ContactEmail() string {
	if u, err := url.Parse(c.DomainURL); err == nil && u.Host != "" {
		return "mf-live@" + u.Host
	}
	parts := strings.Split(c.DomainURL, "//")
	return "mf-live@" + strings.ReplaceAll(parts[len(parts)-1], "/", "")
}
