// Package app assembles the API from configuration.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/raushankrgupta/portfolio-api/api"
	"github.com/raushankrgupta/portfolio-api/config"
	"github.com/raushankrgupta/portfolio-api/notify"
	"github.com/raushankrgupta/portfolio-api/store"
)

const connectTimeout = 10 * time.Second

// App is the assembled API plus what needs closing on shutdown
type App struct {
	Handler http.Handler
	mongo   *store.MongoStore
	logger  *slog.Logger
}

// New connects to MongoDB and builds the router. A database that cannot be
// reached is logged and does not stop the API from starting: submissions
// fail with 500 until the driver gets through.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{logger: logger}

	var inserter store.Inserter
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	mongoStore, err := store.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("MongoDB connection error", slog.Any("error", err))
		inserter = store.Unavailable{Cause: err}
	} else {
		if err := mongoStore.Ping(ctx); err != nil {
			logger.Error("MongoDB connection error", slog.Any("error", err))
		} else {
			logger.Info("MongoDB connected successfully", slog.String("database", mongoStore.Database()))
		}
		a.mongo = mongoStore
		inserter = mongoStore
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.NotificationsEnabled() {
		notifier = notify.NewSendGrid(cfg.SendGridAPIKey, cfg.NotifyFromEmail, cfg.NotifyEmail)
		logger.Info("Submission notifications enabled", slog.String("to", cfg.NotifyEmail))
	}

	a.Handler = api.NewRouter(api.Dependencies{
		Store:      inserter,
		Notifier:   notifier,
		Logger:     logger,
		CORSOrigin: cfg.CORSOrigin,
	})
	return a
}

// Close disconnects from MongoDB if a client was created
func (a *App) Close(ctx context.Context) {
	if a.mongo == nil {
		return
	}
	if err := a.mongo.Disconnect(ctx); err != nil {
		a.logger.Warn("MongoDB disconnect failed", slog.Any("error", err))
	}
}
