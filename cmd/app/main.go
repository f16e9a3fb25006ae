package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/FunSlots_Go/internal/bootstrap"
	"github.com/osse101/FunSlots_Go/internal/config"
)

// @title Fun Slots API
// @version 1.0
// @description Three-reel slot machine sessions over HTTP.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	slog.Info(bootstrap.LogMsgStartingFunSlots,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	app := bootstrap.NewApp(cfg)

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:         app.Server,
		SessionService: app.SessionService,
	})
}
