package ratelimit

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// Middleware ограничивает частоту запросов по X-Sharer-User-Id,
// для анонимных запросов по адресу клиента.
// Ошибка бэкенда не блокирует запрос
func Middleware(limiter Limiter, backend string, metrics Metrics, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Warn("RateLimit: backend=%s failed for key=%s: %v", backend, key, err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				metrics.ObserveRateLimitRejection(backend)
				log.Warn("RateLimit: rejected key=%s, backend=%s", key, backend)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID := r.Header.Get(middleware.UserIDHeader); userID != "" {
		return "user:" + userID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
