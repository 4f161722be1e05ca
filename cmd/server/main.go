// Package main implements the entry point for the Apiary API server, which
// manages apiaries, hives and the records beekeepers keep about them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("apiary-api: %v", err)
	}
}

// run loads configuration, then either executes migrateCmd or serves HTTP
// until SIGINT or SIGTERM.
func run(migrateCmd string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("rate_limit", cfg.RateLimit.Enabled),
		slog.Bool("metrics", cfg.Metrics.Enabled))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, sqlDB, err := connectDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = sqlDB.Close() }()
		return postgres.Migrate(ctx, sqlDB, migrateCmd, l)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, sqlDB, "up", l); err != nil {
			_ = sqlDB.Close()
			return err
		}
	}

	app, err := newApplication(cfg, l, db, sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
