package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scope adjusts a query before it runs.
type scope func(db *gorm.DB) *gorm.DB

// recordOptions describe how one entity type is stored.
type recordOptions[F any] struct {
	entity   string
	notFound error
	// omit lists associations that Create must not write.
	omit []string
	// detail is applied when loading a single record.
	detail scope
	// list applies filter, preloads and ordering for List.
	list func(db *gorm.DB, filter F) *gorm.DB
}

// recordStore implements store.RecordStore for entity T with filter F.
type recordStore[T any, F any] struct {
	db     *gorm.DB
	logger *slog.Logger
	opts   recordOptions[F]
}

func newRecordStore[T any, F any](db *gorm.DB, log *slog.Logger, opts recordOptions[F]) *recordStore[T, F] {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &recordStore[T, F]{
		db:     db,
		logger: log.With(slog.String("component", opts.entity+"_store")),
		opts:   opts,
	}
}

// withDB returns a copy bound to db, typically a transaction.
func (s *recordStore[T, F]) withDB(db *gorm.DB) *recordStore[T, F] {
	clone := *s
	clone.db = db
	return &clone
}

func (s *recordStore[T, F]) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Create implements store.RecordStore.Create.
func (s *recordStore[T, F]) Create(ctx context.Context, records ...*T) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	db := s.conn(ctx)
	if len(s.opts.omit) > 0 {
		db = db.Omit(s.opts.omit...)
	}
	if err := db.Create(records).Error; err != nil {
		log.LogAttrs(ctx, writeFailureLevel(err), "failed to create records",
			slog.String("entity", s.opts.entity),
			slog.Int("count", len(records)),
			slog.String("error", err.Error()))
		return store.NewStoreError(s.opts.entity, "create", "insert failed", MapError(err))
	}

	log.Debug("records created",
		slog.String("entity", s.opts.entity),
		slog.Int("count", len(records)))
	return nil
}

// GetByID implements store.RecordStore.GetByID.
func (s *recordStore[T, F]) GetByID(ctx context.Context, id int64) (*T, error) {
	db := s.conn(ctx)
	if s.opts.detail != nil {
		db = s.opts.detail(db)
	}

	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.opts.notFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get record",
			slog.String("entity", s.opts.entity),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(s.opts.entity, "get", "select failed", MapError(err))
	}
	return &rec, nil
}

// List implements store.RecordStore.List.
func (s *recordStore[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	db := s.conn(ctx).Model(new(T))
	if s.opts.list != nil {
		db = s.opts.list(db, filter)
	}

	records := make([]T, 0)
	if err := db.Find(&records).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list records",
			slog.String("entity", s.opts.entity),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(s.opts.entity, "list", "select failed", MapError(err))
	}
	return records, nil
}

// Update implements store.RecordStore.Update.
func (s *recordStore[T, F]) Update(ctx context.Context, id int64, fields store.Fields) error {
	if len(fields) == 0 {
		_, err := s.GetByID(ctx, id)
		return err
	}

	res := s.conn(ctx).Model(new(T)).Where("id = ?", id).Updates(map[string]any(fields))
	if res.Error != nil {
		logger.FromContextOrDefault(ctx, s.logger).LogAttrs(ctx, writeFailureLevel(res.Error),
			"failed to update record",
			slog.String("entity", s.opts.entity),
			slog.Int64("id", id),
			slog.String("error", res.Error.Error()))
		return store.NewStoreError(s.opts.entity, "update", "update failed", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return s.opts.notFound
	}
	return nil
}

// Delete implements store.RecordStore.Delete.
func (s *recordStore[T, F]) Delete(ctx context.Context, id int64) error {
	res := s.conn(ctx).Delete(new(T), id)
	if res.Error != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete record",
			slog.String("entity", s.opts.entity),
			slog.Int64("id", id),
			slog.String("error", res.Error.Error()))
		return store.NewStoreError(s.opts.entity, "delete", "delete failed", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return s.opts.notFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("record deleted",
		slog.String("entity", s.opts.entity),
		slog.Int64("id", id))
	return nil
}

// upsert inserts value, or on a conflict on conflictColumn overwrites columns.
func upsert(ctx context.Context, db *gorm.DB, value any, conflictColumn string, columns []string) error {
	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: conflictColumn}}}
	if len(columns) == 0 {
		onConflict.DoNothing = true
	} else {
		onConflict.DoUpdates = clause.AssignmentColumns(columns)
	}
	if err := db.WithContext(ctx).Clauses(onConflict).Create(value).Error; err != nil {
		return MapError(err)
	}
	return nil
}

func whereEq[V any](db *gorm.DB, column string, v *V) *gorm.DB {
	if v == nil {
		return db
	}
	return db.Where(fmt.Sprintf("%s = ?", column), *v)
}

func whereRange(db *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		db = db.Where(fmt.Sprintf("%s >= ?", column), from.UTC())
	}
	if to != nil {
		db = db.Where(fmt.Sprintf("%s <= ?", column), to.UTC())
	}
	return db
}

func preloadApiaryAndHive(db *gorm.DB) *gorm.DB {
	return db.Preload("Apiary").Preload("Hive")
}
