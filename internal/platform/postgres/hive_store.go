package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// PostgresHiveStore implements store.HiveStore.
// Creating a hive also writes its colony info and queen when they are set.
type PostgresHiveStore struct {
	*recordStore[domain.Hive, store.HiveFilter]
}

var _ store.HiveStore = (*PostgresHiveStore)(nil)

func preloadHiveDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("ColonyInfo").Preload("QueenInfo")
}

// NewPostgresHiveStore creates a hive store on db.
func NewPostgresHiveStore(db *gorm.DB, logger *slog.Logger) *PostgresHiveStore {
	return &PostgresHiveStore{newRecordStore[domain.Hive](db, logger, recordOptions[store.HiveFilter]{
		entity:   "hive",
		notFound: store.ErrHiveNotFound,
		omit:     []string{"Apiary"},
		detail:   preloadHiveDetails,
		list: func(db *gorm.DB, f store.HiveFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "type", f.Type)
			db = whereEq(db, "status", f.Status)
			return preloadHiveDetails(db).Order("created_at DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.HiveStore.WithTx.
func (s *PostgresHiveStore) WithTx(tx *gorm.DB) store.HiveStore {
	return &PostgresHiveStore{s.withDB(tx)}
}

// UpsertColonyInfo implements store.HiveStore.UpsertColonyInfo.
func (s *PostgresHiveStore) UpsertColonyInfo(ctx context.Context, info *domain.HiveColonyInfo, columns []string) error {
	if err := upsert(ctx, s.db, info, "hive_id", withUpdatedAt(columns)); err != nil {
		s.logger.Error("failed to upsert colony info",
			slog.Int64("hive_id", info.HiveID),
			slog.String("error", err.Error()))
		return store.NewStoreError("hive_colony_info", "upsert", "upsert failed", err)
	}
	return nil
}

// UpsertQueen implements store.HiveStore.UpsertQueen.
func (s *PostgresHiveStore) UpsertQueen(ctx context.Context, queen *domain.HiveQueen, columns []string) error {
	if err := upsert(ctx, s.db, queen, "hive_id", withUpdatedAt(columns)); err != nil {
		s.logger.Error("failed to upsert queen",
			slog.Int64("hive_id", queen.HiveID),
			slog.String("error", err.Error()))
		return store.NewStoreError("hive_queen", "upsert", "upsert failed", err)
	}
	return nil
}

// hiveOwnedTables hold rows that carry both apiary_id and hive_id.
var hiveOwnedTables = []string{"inspections", "tasks", "feedings", "harvests", "treatments"}

// MoveRecords implements store.HiveStore.MoveRecords.
func (s *PostgresHiveStore) MoveRecords(ctx context.Context, hiveID, apiaryID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := time.Now().UTC()
	for _, table := range hiveOwnedTables {
		res := s.conn(ctx).Table(table).
			Where("hive_id = ?", hiveID).
			Updates(map[string]any{"apiary_id": apiaryID, "updated_at": now})
		if res.Error != nil {
			log.Error("failed to move hive records",
				slog.String("table", table),
				slog.Int64("hive_id", hiveID),
				slog.String("error", res.Error.Error()))
			return store.NewStoreError(table, "move", "update failed", MapError(res.Error))
		}
		if res.RowsAffected > 0 {
			log.Debug("hive records moved",
				slog.String("table", table),
				slog.Int64("hive_id", hiveID),
				slog.Int64("apiary_id", apiaryID),
				slog.Int64("count", res.RowsAffected))
		}
	}
	return nil
}

func withUpdatedAt(columns []string) []string {
	if len(columns) == 0 {
		return columns
	}
	return append(append([]string(nil), columns...), "updated_at")
}
