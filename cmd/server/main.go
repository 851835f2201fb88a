package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradelink-utils/internal/api/routes"
	"tradelink-utils/internal/catalog"
	"tradelink-utils/internal/config"
	"tradelink-utils/internal/estimator"
	"tradelink-utils/internal/llm"
	"tradelink-utils/internal/llm/providers"
	"tradelink-utils/internal/logging"
	"tradelink-utils/internal/rolecontext"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting TradeLink Utils")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg, providers.CreateProvider)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize session context store. Redis being down is not fatal:
	// estimates just run with the request's own location.
	store := rolecontext.NewStore(cfg)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("Context store unreachable - sessions will use default context", map[string]interface{}{
			"error": err.Error(),
		})
	}
	pingCancel()

	// Initialize the estimation engine
	engine := estimator.NewEngine(estimator.DefaultPricingContext(), llmManager, cfg.LLM.Timeout)

	// Marketplace reference data
	cat := catalog.New()

	// Initialize Echo
	e := echo.New()

	// Setup routes
	routes.SetupRoutes(e, cfg, engine, llmManager, store, cat)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Closing context store...")
		if err := store.Close(); err != nil {
			logger.Error("Error closing context store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
