package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a pgx-backed *sql.DB with the configured pool settings and
// wraps it in a gorm handle. It does not ping the database.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	gormCfg := GormConfig(log)
	gormCfg.DisableAutomaticPing = true
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return db, sqlDB, nil
}

// GormConfig returns the gorm settings shared by production and test databases.
func GormConfig(log *slog.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(log),
		TranslateError: true,
	}
}
