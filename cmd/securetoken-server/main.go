package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/services"
	"github.com/DanielPopoola/checkout-sdk/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-sdk/internal/interfaces/rest/middleware"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if cfg.Server.SecretAPIKey == "" {
		logger.Error("CHECKOUT_SERVER__SECRET_API_KEY is required")
		os.Exit(1)
	}

	logger.Info("starting secure token service",
		"port", cfg.Server.Port,
		"mode", cfg.SDK.Mode,
		"log_level", cfg.Logger.Level,
	)

	svc, err := services.NewManager(cfg, logger)
	if err != nil {
		logger.Error("failed to build backend client", "error", err)
		os.Exit(1)
	}
	defer svc.Cleanup()

	h := handlers.NewHandlers(svc.SecureToken, cfg.Server.SecretAPIKey, logger)

	router := mux.NewRouter()
	h.RegisterRoutes(router)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
