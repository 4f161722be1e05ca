package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	apiMiddleware "github.com/phrazzld/apiary-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthPingTimeout = 2 * time.Second

// crud is the handler shape shared by every /api resource.
type crud interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// mountResource registers the five standard routes for h under path.
// extra registers additional routes before the /{id} ones.
func mountResource(r chi.Router, path string, h crud, extra func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		if extra != nil {
			extra(r)
		}
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// setupRouter creates the router with middleware, operational endpoints and
// the /api routes. The rate limiter runs before any route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	if app.config.Metrics.Enabled {
		r.Use(app.metrics.Middleware)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Trace-ID", "Retry-After"},
		MaxAge:         300,
	}))
	if app.limiter != nil {
		r.Use(apiMiddleware.RateLimit(app.limiter, app.logger))
	}
	if timeout := app.config.Server.WriteTimeout; timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/health", app.health)
	if app.config.Metrics.Enabled {
		gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, app.registry}
		r.Handle(app.config.Metrics.Path, promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	}

	h := app.handlers
	r.Route("/api", func(r chi.Router) {
		mountResource(r, "/apiaries", h.apiaries, nil)
		mountResource(r, "/hives", h.hives, nil)
		mountResource(r, "/inspections", h.inspections, nil)
		mountResource(r, "/tasks", h.tasks, func(r chi.Router) {
			r.Get("/status/{status}", h.tasks.ListByStatus)
			r.Put("/{id}/complete", h.tasks.Complete)
		})
		mountResource(r, "/feedings", h.feedings, nil)
		mountResource(r, "/harvests", h.harvests, nil)
		mountResource(r, "/treatments", h.treatments, nil)
	})

	return r
}

// health reports 200 while the database answers a ping and 503 otherwise.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.sqlDB.PingContext(ctx); err != nil {
		app.logger.Warn("Health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "Service Unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
