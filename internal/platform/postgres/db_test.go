package postgres_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/apiary-api/internal/config"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_DoesNotRequireReachableDatabase(t *testing.T) {
	t.Parallel()

	cfg := config.DatabaseConfig{
		URL:             "postgres://apiary@127.0.0.1:1/apiary?sslmode=disable",
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
	}
	db, sqlDB, err := postgres.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NotNil(t, db)
	assert.Error(t, sqlDB.Ping(), "nothing listens on port 1")
}
