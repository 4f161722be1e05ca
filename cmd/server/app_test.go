package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            3000,
			LogLevel:        "debug",
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{URL: "postgres://localhost/apiary_test"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{
			Enabled:         false,
			Requests:        100,
			Window:          time.Minute,
			Backend:         "memory",
			CleanupInterval: time.Minute,
			IdleTTL:         time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *application {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	db := testutils.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	app, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), db, sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.cleanup() })
	return app
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.7:40000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, nil)
	router := app.setupRouter()

	w := serve(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	require.NoError(t, app.sqlDB.Close())
	w = serve(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_ApiRoutes(t *testing.T) {
	t.Parallel()
	router := newTestApp(t, nil).setupRouter()

	w := serve(t, router, http.MethodPost, "/api/apiaries", `{"name":"Orchard","type":"HOBBY"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	for _, path := range []string{
		"/api/apiaries", "/api/hives", "/api/inspections", "/api/tasks",
		"/api/tasks/status/pending", "/api/feedings", "/api/harvests", "/api/treatments",
	} {
		w := serve(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = serve(t, router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()
	router := newTestApp(t, nil).setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/apiaries", nil)
	req.Header.Set("Origin", "https://hive.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		router := newTestApp(t, nil).setupRouter()
		serve(t, router, http.MethodGet, "/health", "")

		w := serve(t, router, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `apiary_http_requests_total{method="GET",route="/health",status="200"} 1`)
		assert.Contains(t, w.Body.String(), "apiary_http_request_duration_seconds")
	})

	t.Run("disabled", func(t *testing.T) {
		router := newTestApp(t, func(cfg *config.Config) { cfg.Metrics.Enabled = false }).setupRouter()

		w := serve(t, router, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_RateLimitAppliesBeforeRoutes(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Requests = 2
	})
	router := app.setupRouter()

	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/api/apiaries", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/api/hives", "").Code)

	w := serve(t, router, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = serve(t, router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "unmatched routes are limited too")
}

func TestRouter_EmptyBody(t *testing.T) {
	t.Parallel()
	router := newTestApp(t, nil).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/hives", &bytes.Buffer{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestCleanup(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, func(cfg *config.Config) { cfg.RateLimit.Enabled = true })

	require.NotNil(t, app.limiter)
	assert.NoError(t, app.cleanup())
	assert.Error(t, app.sqlDB.Ping(), "database pool is closed")
}

func TestSetupRateLimiter_Redis(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Backend = "redis"
		cfg.RateLimit.RedisAddr = "127.0.0.1:6399"
	})

	require.NotNil(t, app.limiter)
	assert.Len(t, app.closers, 1)
}
