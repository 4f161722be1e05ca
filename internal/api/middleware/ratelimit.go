package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/ratelimit"
)

const msgTooManyRequests = "Too many requests, please try again later"

// RateLimit rejects clients that exceed limiter with 429 and a Retry-After
// header. Clients are keyed by IP, so chi's RealIP should run first.
// Requests are let through when the limiter itself fails.
func RateLimit(limiter ratelimit.Limiter, base *slog.Logger) func(http.Handler) http.Handler {
	if limiter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("limiter cannot be nil")
	}
	if base == nil {
		base = slog.Default()
	}
	base = base.With(slog.String("component", "rate_limit_middleware"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			decision, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.FromContextOrDefault(r.Context(), base).Warn("rate limiter unavailable, allowing request",
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				shared.RespondWithError(w, r, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
