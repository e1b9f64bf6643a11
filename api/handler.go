package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/raushankrgupta/portfolio-api/notify"
	"github.com/raushankrgupta/portfolio-api/store"
)

const notifyTimeout = 15 * time.Second

// Dependencies are the collaborators the API needs. Store is required.
type Dependencies struct {
	Store      store.Inserter
	Notifier   notify.Notifier
	Logger     *slog.Logger
	CORSOrigin string
	// Now defaults to time.Now
	Now func() time.Time
}

// Handler serves the portfolio endpoints
type Handler struct {
	store    store.Inserter
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewHandler(deps Dependencies) *Handler {
	h := &Handler{
		store:    deps.Store,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	if h.notifier == nil {
		h.notifier = notify.Noop{}
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// sendNotification mails the site owner without holding up the response
func (h *Handler) sendNotification(msg notify.Message, requestID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.Send(ctx, msg); err != nil {
			h.logger.Warn("Notification failed",
				slog.String("subject", msg.Subject),
				slog.String("request_id", requestID),
				slog.Any("error", err))
		}
	}()
}
