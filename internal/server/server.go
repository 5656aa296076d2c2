package server

import (
	"net/http"

	"github.com/cyphera/cyphera-fees/internal/handlers"
	"github.com/cyphera/cyphera-fees/internal/interfaces"
	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/internal/middleware"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler *handlers.HealthHandler
	feeHandler    *handlers.FeeHandler

	rateLimiter *middleware.RateLimiter
)

// InitializeHandlers loads the fee schedules named by cfg and wires the handlers
func InitializeHandlers(cfg Config) error {
	store, err := schedule.LoadFile(cfg.FeeSchedulePath)
	if err != nil {
		return errors.Wrap(err, "failed to load fee schedules")
	}
	InitializeHandlersWithProvider(store)

	logger.Info("Fee schedules loaded", zap.String("path", cfg.FeeSchedulePath))
	return nil
}

// InitializeHandlersWithProvider wires the handlers against an existing
// schedule provider
func InitializeHandlersWithProvider(provider interfaces.ScheduleProvider) {
	healthHandler = handlers.NewHealthHandler()
	feeHandler = handlers.NewFeeHandler(services.NewFeeService(provider))
}

// InitializeRoutes installs middleware and routes on router.
// InitializeHandlers must have been called first.
func InitializeRoutes(router *gin.Engine, cfg Config) {
	router.Use(configureCORS(cfg))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(cfg.IsDevelopment()))

	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router.Use(rateLimiter.Middleware())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/networks", feeHandler.ListNetworks)

		networks := v1.Group("/networks/:network/fees")
		{
			networks.GET("/schedule", feeHandler.GetSchedule)
			networks.POST("/estimate", feeHandler.EstimateFee)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// NewRouter builds a gin engine with handlers and routes for cfg
func NewRouter(cfg Config) (*gin.Engine, error) {
	if err := InitializeHandlers(cfg); err != nil {
		return nil, err
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "invalid TRUSTED_PROXIES")
	}
	router.Use(gin.Recovery())
	InitializeRoutes(router, cfg)
	return router, nil
}

// Shutdown releases background resources started by InitializeRoutes
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS(cfg Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = cfg.CORSAllowedMethods
	corsConfig.AllowHeaders = cfg.CORSAllowedHeaders
	corsConfig.ExposeHeaders = []string{
		middleware.CorrelationIDHeader,
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
	}
	return cors.New(corsConfig)
}
