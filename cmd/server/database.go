package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"gorm.io/gorm"
)

const pingTimeout = 5 * time.Second

// connectDatabase opens the connection pool and pings it, retrying with
// exponential backoff up to cfg.ConnectRetries times.
func connectDatabase(ctx context.Context, cfg config.DatabaseConfig, l *slog.Logger) (*gorm.DB, *sql.DB, error) {
	db, sqlDB, err := postgres.Open(cfg, l)
	if err != nil {
		return nil, nil, err
	}

	if err := pingWithRetry(ctx, sqlDB, cfg.ConnectRetries, l); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	l.Info("Database connection established")
	return db, sqlDB, nil
}

func pingWithRetry(ctx context.Context, sqlDB *sql.DB, retries uint64, l *slog.Logger) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries),
		ctx,
	)
	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()
			return sqlDB.PingContext(pingCtx)
		},
		policy,
		func(err error, wait time.Duration) {
			l.Warn("database not ready, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()))
		},
	)
}
