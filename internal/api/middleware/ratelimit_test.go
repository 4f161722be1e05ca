package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func serveRateLimited(t *testing.T, limiter ratelimit.Limiter) *httptest.ResponseRecorder {
	t.Helper()
	handler := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/apiaries", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("allowed", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Remaining: 41}}
		w := serveRateLimited(t, limiter)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "41", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"192.0.2.10"}, limiter.keys)
	})

	t.Run("rejected", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{RetryAfter: 1500 * time.Millisecond}}
		w := serveRateLimited(t, limiter)

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, shared.StatusFail, resp.Status)
		assert.Equal(t, msgTooManyRequests, resp.Message)
	})

	t.Run("limiter failure lets request through", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis: connection refused")}
		w := serveRateLimited(t, limiter)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit_MemoryLimiter(t *testing.T) {
	t.Parallel()
	limiter, err := ratelimit.NewMemoryLimiter(ratelimit.Config{Requests: 2, Window: time.Minute}, 0, time.Minute, nil)
	require.NoError(t, err)
	t.Cleanup(limiter.Stop)

	assert.Equal(t, http.StatusOK, serveRateLimited(t, limiter).Code)
	assert.Equal(t, http.StatusOK, serveRateLimited(t, limiter).Code)
	w := serveRateLimited(t, limiter)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

func TestRateLimit_NilLimiterPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { RateLimit(nil, nil) })
}
