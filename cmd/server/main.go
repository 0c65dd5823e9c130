package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eko-analiz/internal/api"
	"eko-analiz/internal/api/handlers"
	"eko-analiz/internal/repository"
	"eko-analiz/internal/service"
	"eko-analiz/pkg/config"
	"eko-analiz/pkg/logger"
	"eko-analiz/pkg/supabase"

	"go.uber.org/zap"
)

// @title Eko Analiz API
// @version 1.0
// @description Read-only analytics dashboard over precomputed firm and entrepreneur predictions

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting eko-analiz service")

	// The client is built even without credentials: their absence is a
	// per-request configuration error, not a startup crash.
	db := supabase.NewClient(&cfg.Supabase, appLogger)

	analysisRepo := repository.NewAnalysisRepository(db, appLogger)
	analysisService := service.NewAnalysisService(analysisRepo, &cfg.Supabase, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)

	app := api.SetupRouter(analysisHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
