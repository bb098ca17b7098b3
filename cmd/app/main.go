package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/VentureBot_Go/internal/bootstrap"
	"github.com/osse101/VentureBot_Go/internal/config"
)

const shutdownTimeout = 15 * time.Second

// @title VentureBot API
// @version 1.0
// @description Facility ventures driven by actor turns: dice resolution, treasury boons and the session event stream.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApplication(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	app.Start()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Serve()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	app.Shutdown(shutdownTimeout)
}
