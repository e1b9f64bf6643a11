// Package server runs the API on a local port.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Options controls Start. Listen is false when an external host (a
// serverless platform) calls the handler directly.
type Options struct {
	Listen bool
	Port   string
	Logger *slog.Logger
}

// Start serves handler until ctx is cancelled. When opts.Listen is false it
// returns nil straight away without binding a port.
func Start(ctx context.Context, handler http.Handler, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !opts.Listen {
		logger.Info("Local listener disabled, expecting an external host to invoke the handler")
		return nil
	}

	ln, err := net.Listen("tcp", ":"+opts.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", opts.Port, err)
	}
	return Serve(ctx, ln, handler, logger)
}

// Serve runs an HTTP server on ln and shuts it down gracefully when ctx is done
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
