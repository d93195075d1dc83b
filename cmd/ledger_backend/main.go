package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fund_ledger/internal/core/services"
	"github.com/SscSPs/fund_ledger/internal/handlers"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/platform/storage"
	"github.com/gin-gonic/gin"
)

// @title Fund Ledger API
// @version 1.0
// @description Fund-segregated double-entry bookkeeping for masjids and other nonprofits.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	rules, err := config.LoadPostingRules(cfg.PostingRulesFile)
	if err != nil {
		logger.Error("Failed to load posting rules", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore, err := storage.Open(context.Background(), cfg, logger, true)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg, store, rules)
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("store", cfg.StoreDriver),
		slog.String("tenancy", string(cfg.TenancyMode)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
