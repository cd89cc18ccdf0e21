package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/saulo-duarte/persona-quiz/internal/config"
)

// Middleware limits each client IP to limit requests per window. It expects
// chi's RealIP to have run so RemoteAddr is the client address. onLimit
// writes the rejection; a nil onLimit answers a plain 429. Store errors let
// the request through.
func Middleware(store Store, limit int, window time.Duration, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if onLimit == nil {
		onLimit = func(w http.ResponseWriter, r *http.Request) {
			config.JSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests, please try again later."})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, remaining, err := store.Allow(r.Context(), key, limit, window)
			if err != nil {
				config.WithContext(r.Context()).WithError(err).Warn("Rate limit store failed, letting request through")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				config.WithContext(r.Context()).WithField("client", key).Warn("Rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
