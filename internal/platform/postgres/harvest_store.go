package postgres

import (
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresHarvestStore implements store.HarvestStore.
type PostgresHarvestStore struct {
	*recordStore[domain.Harvest, store.HarvestFilter]
}

var _ store.HarvestStore = (*PostgresHarvestStore)(nil)

// NewPostgresHarvestStore creates a harvest store on db.
func NewPostgresHarvestStore(db *gorm.DB, logger *slog.Logger) *PostgresHarvestStore {
	return &PostgresHarvestStore{newRecordStore[domain.Harvest](db, logger, recordOptions[store.HarvestFilter]{
		entity:   "harvest",
		notFound: store.ErrHarvestNotFound,
		omit:     []string{clause.Associations},
		detail:   preloadApiaryAndHive,
		list: func(db *gorm.DB, f store.HarvestFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "hive_id", f.HiveID)
			db = whereEq(db, "product_type", f.ProductType)
			db = whereEq(db, "variety", f.Variety)
			db = whereRange(db, "harvest_date", f.FromDate, f.ToDate)
			return preloadApiaryAndHive(db).Order("harvest_date DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.HarvestStore.WithTx.
func (s *PostgresHarvestStore) WithTx(tx *gorm.DB) store.HarvestStore {
	return &PostgresHarvestStore{s.withDB(tx)}
}
