package rate_limiter

import (
	"net/http"
	"strconv"

	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/pkg/logger"
)

const rejectBody = `{"error":"rate limit exceeded, try again later"}`

// Middleware отвечает 429, пока в бакете нет токенов. qps уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("correlation_id", request_id.FromContext(r.Context())),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(rejectBody))
			if err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("write rate limit response")
			}
		})
	}
}
