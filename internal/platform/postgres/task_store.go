package postgres

import (
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresTaskStore implements store.TaskStore.
type PostgresTaskStore struct {
	*recordStore[domain.Task, store.TaskFilter]
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a task store on db. Tasks are listed by
// start date, soonest first.
func NewPostgresTaskStore(db *gorm.DB, logger *slog.Logger) *PostgresTaskStore {
	return &PostgresTaskStore{newRecordStore[domain.Task](db, logger, recordOptions[store.TaskFilter]{
		entity:   "task",
		notFound: store.ErrTaskNotFound,
		omit:     []string{clause.Associations},
		detail:   preloadApiaryAndHive,
		list: func(db *gorm.DB, f store.TaskFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "hive_id", f.HiveID)
			db = whereEq(db, "status", f.Status)
			db = whereEq(db, "priority", f.Priority)
			db = whereEq(db, "type", f.Type)
			return preloadApiaryAndHive(db).Order("start_date ASC").Order("id ASC")
		},
	})}
}

// WithTx implements store.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *gorm.DB) store.TaskStore {
	return &PostgresTaskStore{s.withDB(tx)}
}
