package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Handler готовность: 503, если сервис останавливается или база не отвечает.
type Handler struct {
	isShuttingDown *atomic.Bool
	db             Pinger
}

func New(isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
