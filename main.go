package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/portfolio-api/app"
	"github.com/raushankrgupta/portfolio-api/config"
	"github.com/raushankrgupta/portfolio-api/logging"
	"github.com/raushankrgupta/portfolio-api/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(ctx, cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Close(closeCtx)
	}()

	logger.Info("Starting Portfolio API",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.Port))

	return server.Start(ctx, a.Handler, server.Options{
		Listen: !cfg.Production(),
		Port:   cfg.Port,
		Logger: logger,
	})
}
