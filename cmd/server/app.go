package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/phrazzld/apiary-api/internal/api"
	apiMiddleware "github.com/phrazzld/apiary-api/internal/api/middleware"
	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"github.com/phrazzld/apiary-api/internal/ratelimit"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// handlers groups the HTTP handlers mounted under /api.
type handlers struct {
	apiaries    *api.ApiaryHandler
	hives       *api.HiveHandler
	inspections *api.InspectionHandler
	tasks       *api.TaskHandler
	feedings    *api.FeedingHandler
	harvests    *api.HarvestHandler
	treatments  *api.TreatmentHandler
}

// application holds the shared dependencies of the server so they can be
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB
	sqlDB  *sql.DB

	handlers handlers

	limiter  ratelimit.Limiter
	closers  []func() error
	registry *prometheus.Registry
	metrics  *apiMiddleware.HTTPMetrics
}

// newApplication wires stores, services and handlers over an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, sqlDB *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		sqlDB:    sqlDB,
		registry: prometheus.NewRegistry(),
	}
	app.metrics = apiMiddleware.NewHTTPMetrics(app.registry)

	apiaryStore := postgres.NewPostgresApiaryStore(db, logger)
	hiveStore := postgres.NewPostgresHiveStore(db, logger)

	apiaries, err := service.NewApiaryService(apiaryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create apiary service: %w", err)
	}
	hives, err := service.NewHiveService(db, apiaryStore, hiveStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create hive service: %w", err)
	}
	inspections, err := service.NewInspectionService(db, apiaryStore, hiveStore,
		postgres.NewPostgresInspectionStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create inspection service: %w", err)
	}
	tasks, err := service.NewTaskService(apiaryStore, hiveStore, postgres.NewPostgresTaskStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	feedings, err := service.NewFeedingService(db, apiaryStore, hiveStore,
		postgres.NewPostgresFeedingStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create feeding service: %w", err)
	}
	harvests, err := service.NewHarvestService(db, apiaryStore, hiveStore,
		postgres.NewPostgresHarvestStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create harvest service: %w", err)
	}
	treatments, err := service.NewTreatmentService(db, apiaryStore, hiveStore,
		postgres.NewPostgresTreatmentStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create treatment service: %w", err)
	}

	app.handlers = handlers{
		apiaries:    api.NewApiaryHandler(apiaries, logger),
		hives:       api.NewHiveHandler(hives, logger),
		inspections: api.NewInspectionHandler(inspections, logger),
		tasks:       api.NewTaskHandler(tasks, logger),
		feedings:    api.NewFeedingHandler(feedings, logger),
		harvests:    api.NewHarvestHandler(harvests, logger),
		treatments:  api.NewTreatmentHandler(treatments, logger),
	}

	if cfg.RateLimit.Enabled {
		if err := app.setupRateLimiter(); err != nil {
			return nil, err
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupRateLimiter builds the configured limiter backend and registers its
// shutdown hook.
func (app *application) setupRateLimiter() error {
	rl := app.config.RateLimit
	limits := ratelimit.Config{Requests: rl.Requests, Window: rl.Window}

	switch rl.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     rl.RedisAddr,
			Password: rl.RedisPassword,
			DB:       rl.RedisDB,
		})
		limiter, err := ratelimit.NewRedisLimiter(client, limits, app.logger)
		if err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to create redis rate limiter: %w", err)
		}
		app.limiter = limiter
		app.closers = append(app.closers, limiter.Close)
	default:
		limiter, err := ratelimit.NewMemoryLimiter(limits, rl.CleanupInterval, rl.IdleTTL, app.logger)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
		app.limiter = limiter
		app.closers = append(app.closers, func() error {
			limiter.Stop()
			return nil
		})
	}

	app.logger.Info("Rate limiting enabled",
		slog.String("backend", rl.Backend),
		slog.Int("requests", rl.Requests),
		slog.Duration("window", rl.Window))
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the limiter and the database pool, collecting every
// failure.
func (app *application) cleanup() error {
	var result *multierror.Error
	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if app.sqlDB != nil {
		if err := app.sqlDB.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		app.logger.Error("Application shutdown completed with errors", slog.String("error", err.Error()))
		return err
	}
	app.logger.Info("Application shutdown completed")
	return nil
}
