package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"service is shutting down"}`

// Middleware отклоняет новые запросы с 503, как только ongoingCtx отменён и выставлен флаг остановки.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(shuttingDownBody))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
