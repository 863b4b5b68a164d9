package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/client-service-manager/internal/api"
	"github.com/client-service-manager/internal/config"
	"github.com/client-service-manager/internal/repository"
	"github.com/client-service-manager/internal/service"
	"github.com/client-service-manager/internal/sheets"
	"github.com/client-service-manager/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting client/service manager...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the spreadsheet store
	store, err := sheets.New(context.Background(), cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to spreadsheet store")
	}

	// Initialize repositories, one per worksheet
	repos := repository.New(
		store.Worksheet(cfg.Sheets.Clients),
		store.Worksheet(cfg.Sheets.Addresses),
		store.Worksheet(cfg.Sheets.Services),
		store.Worksheet(cfg.Sheets.Users),
	)

	// Initialize services
	services := service.NewServices(repos, log)

	// Initialize router
	router := api.NewRouter(services, repos, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
