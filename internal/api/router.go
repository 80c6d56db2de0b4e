package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/mflive/internal/middleware"
)

// RouterConfig carries the HTTP level settings of NewRouter.
type RouterConfig struct {
	DomainURL          string        // redirect target for unmatched routes
	RequestTimeout     time.Duration // per request deadline, 0 disables
	RateLimitPerMinute int           // per client IP, 0 disables
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, RequestTimeout).
//   - Mounts Swagger docs (/swagger/*any) and redirects / to them.
//   - Configures the /mutual-funds routes.
//   - Redirects (302) every unmatched route or method to cfg.DomainURL.
//
// Health and readiness endpoints are registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute),
		middleware.RequestTimeout(cfg.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	// ─── Mutual funds ─────────────────────────────
	funds := router.Group("/mutual-funds")
	{
		funds.GET("/:fund", handler.GetFund)
		funds.POST("", handler.GetFunds)
	}

	// ─── Fallback ─────────────────────────────────
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, cfg.DomainURL)
	})

	return router
}
