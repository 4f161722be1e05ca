package postgres

import (
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresTreatmentStore implements store.TreatmentStore.
type PostgresTreatmentStore struct {
	*recordStore[domain.Treatment, store.TreatmentFilter]
}

var _ store.TreatmentStore = (*PostgresTreatmentStore)(nil)

// NewPostgresTreatmentStore creates a treatment store on db.
func NewPostgresTreatmentStore(db *gorm.DB, logger *slog.Logger) *PostgresTreatmentStore {
	return &PostgresTreatmentStore{newRecordStore[domain.Treatment](db, logger, recordOptions[store.TreatmentFilter]{
		entity:   "treatment",
		notFound: store.ErrTreatmentNotFound,
		omit:     []string{clause.Associations},
		detail:   preloadApiaryAndHive,
		list: func(db *gorm.DB, f store.TreatmentFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "hive_id", f.HiveID)
			db = whereEq(db, "disease", f.Disease)
			db = whereEq(db, "treatment_product", f.TreatmentProduct)
			db = whereRange(db, "start_date", f.FromDate, f.ToDate)
			if f.ActiveAt != nil {
				at := f.ActiveAt.UTC()
				db = db.Where("start_date <= ?", at).
					Where("end_date IS NULL OR end_date >= ?", at)
			}
			return preloadApiaryAndHive(db).Order("start_date DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.TreatmentStore.WithTx.
func (s *PostgresTreatmentStore) WithTx(tx *gorm.DB) store.TreatmentStore {
	return &PostgresTreatmentStore{s.withDB(tx)}
}
