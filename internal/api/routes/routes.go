package routes

import (
	"net/http"
	"time"

	"tradelink-utils/internal/api/handlers"
	"tradelink-utils/internal/api/middleware"
	"tradelink-utils/internal/catalog"
	"tradelink-utils/internal/config"
	"tradelink-utils/internal/estimator"
	"tradelink-utils/internal/llm"
	"tradelink-utils/internal/rolecontext"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, engine *estimator.Engine, llmManager *llm.Manager, store *rolecontext.Store, cat *catalog.Catalog) {
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// The estimate endpoint waits on the model; give it headroom beyond
	// the model invocation timeout before the server cuts the request off
	e.Use(middleware.TimeoutConfig(cfg.LLM.Timeout + 10*time.Second))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/estimate", handlers.EstimateHandler(engine, llmManager.GetProviderName, store))

		// Session role/location context routes
		contextGroup := v1.Group("/context")
		{
			contextGroup.GET("/:session_id", handlers.GetContextHandler(store))
			contextGroup.PUT("/:session_id", handlers.UpdateContextHandler(store))
		}

		// Marketplace browsing routes
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.GET("/trades", handlers.TradesHandler(cat))
			catalogGroup.GET("/suburbs", handlers.SuburbsHandler(cat))
			catalogGroup.GET("/tradies", handlers.TradiesHandler(cat))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "TradeLink Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
