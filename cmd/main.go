package main

//
//  @title           Mutual Funds Live
//  @version         1.0
//  @description     Live (estimated) day change percentage of mutual funds, derived from the intraday movement of their equity holdings.
//  @contact.name    API Support
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @BasePath        /
//
//  @tag.name        mutual-funds
//  @tag.description Live (estimated) day change of mutual funds
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/mflive/config"
	"github.com/guttosm/mflive/docs"
	"github.com/guttosm/mflive/internal/app"
	"github.com/guttosm/mflive/internal/domain/dto"
	"github.com/guttosm/mflive/internal/logger"
	"github.com/guttosm/mflive/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//   - requestTimeout (time.Duration): Inbound request deadline; the write timeout leaves room above it.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string, requestTimeout time.Duration) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (pooled upstream connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// parseFunds splits a comma separated fund list, dropping blanks.
func parseFunds(raw string) []string {
	var funds []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			funds = append(funds, f)
		}
	}
	return funds
}

// runEstimate estimates funds once and writes the JSON array to w.
func runEstimate(ctx context.Context, svc service.FundService, funds []string, w io.Writer) error {
	results, err := svc.AggregateMany(ctx, funds)
	if err != nil {
		return err
	}
	resp := make([]dto.FundResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.NewFundResponse(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// main is the entry point of the mflive application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API (default).
//   - estimate: Estimates the funds given in --funds once and prints JSON to stdout.
//
// Flags:
//   - --mode:  Execution mode ("api" or "estimate"). Default: "api".
//   - --port:  Port for the API server. Defaults to value from config (PORT).
//   - --funds: Comma separated fund identifiers for estimate mode (1 to 5).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	docs.SwaggerInfo.Description = fmt.Sprintf("%s Contact: %s",
		docs.SwaggerInfo.Description, config.AppConfig.Server.ContactEmail())

	mode := flag.String("mode", "api", "Mode: api or estimate")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	funds := flag.String("funds", "", "Comma separated fund identifiers for estimate mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port, config.AppConfig.Server.RequestTimeout)
		gracefulShutdown(ctx, server, cleanup)

	case "estimate":
		svcs, err := app.NewServices(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer svcs.Close()

		ctx, cancel := context.WithTimeout(ctx, config.AppConfig.Server.RequestTimeout)
		defer cancel()

		if err := runEstimate(ctx, svcs.Funds, parseFunds(*funds), os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("estimate failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
