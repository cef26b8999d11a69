package timeout

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"request timed out"}`

// Middleware ограничивает обработку запроса. По истечении клиент получает 503 с JSON-ошибкой,
// а контекст обработчика отменяется.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// заголовки обработчика перекрывают этот при успешном ответе
			w.Header().Set("Content-Type", "application/json")
			limited.ServeHTTP(w, r)
		})
	}
}
