// Package serverless exposes the API to hosts that call an http.HandlerFunc
// directly instead of letting the process listen on a port.
package serverless

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/raushankrgupta/portfolio-api/app"
	"github.com/raushankrgupta/portfolio-api/config"
	"github.com/raushankrgupta/portfolio-api/logging"
	"github.com/raushankrgupta/portfolio-api/utils"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the entrypoint for the external host. The app is built on the
// first call and reused by every invocation that lands on the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	handler.ServeHTTP(w, r)
}

func setup() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong!"})
		})
		return
	}
	logger := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	handler = app.New(context.Background(), cfg, logger).Handler
}
