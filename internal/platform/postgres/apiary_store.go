package postgres

import (
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// PostgresApiaryStore implements store.ApiaryStore.
type PostgresApiaryStore struct {
	*recordStore[domain.Apiary, store.ApiaryFilter]
}

var _ store.ApiaryStore = (*PostgresApiaryStore)(nil)

// NewPostgresApiaryStore creates an apiary store on db.
func NewPostgresApiaryStore(db *gorm.DB, logger *slog.Logger) *PostgresApiaryStore {
	return &PostgresApiaryStore{newRecordStore[domain.Apiary](db, logger, recordOptions[store.ApiaryFilter]{
		entity:   "apiary",
		notFound: store.ErrApiaryNotFound,
		list: func(db *gorm.DB, f store.ApiaryFilter) *gorm.DB {
			return whereEq(db, "type", f.Type).Order("created_at DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.ApiaryStore.WithTx.
func (s *PostgresApiaryStore) WithTx(tx *gorm.DB) store.ApiaryStore {
	return &PostgresApiaryStore{s.withDB(tx)}
}
