package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// PostgresInspectionStore implements store.InspectionStore.
// Creating an inspection also writes every detail section that is set.
type PostgresInspectionStore struct {
	*recordStore[domain.Inspection, store.InspectionFilter]
}

var _ store.InspectionStore = (*PostgresInspectionStore)(nil)

var inspectionSections = []string{
	"Queen", "Brood", "Conditions", "Frames", "Activities", "Problems", "Treatments",
}

func preloadInspectionSections(db *gorm.DB) *gorm.DB {
	for _, section := range inspectionSections {
		db = db.Preload(section)
	}
	return db
}

// NewPostgresInspectionStore creates an inspection store on db.
func NewPostgresInspectionStore(db *gorm.DB, logger *slog.Logger) *PostgresInspectionStore {
	return &PostgresInspectionStore{newRecordStore[domain.Inspection](db, logger, recordOptions[store.InspectionFilter]{
		entity:   "inspection",
		notFound: store.ErrInspectionNotFound,
		omit:     []string{"Apiary", "Hive"},
		detail: func(db *gorm.DB) *gorm.DB {
			return preloadApiaryAndHive(preloadInspectionSections(db))
		},
		list: func(db *gorm.DB, f store.InspectionFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "hive_id", f.HiveID)
			db = whereRange(db, "inspection_date", f.FromDate, f.ToDate)
			db = preloadInspectionSections(db).
				Preload("Apiary", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
				Preload("Hive", func(db *gorm.DB) *gorm.DB { return db.Select("id", "apiary_id", "hive_identifier") })
			return db.Order("inspection_date DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.InspectionStore.WithTx.
func (s *PostgresInspectionStore) WithTx(tx *gorm.DB) store.InspectionStore {
	return &PostgresInspectionStore{s.withDB(tx)}
}

// UpsertDetail implements store.InspectionStore.UpsertDetail.
func (s *PostgresInspectionStore) UpsertDetail(ctx context.Context, detail domain.InspectionDetail, columns []string) error {
	if err := upsert(ctx, s.db, detail, "inspection_id", columns); err != nil {
		s.logger.Error("failed to upsert inspection detail",
			slog.String("table", detail.TableName()),
			slog.String("error", err.Error()))
		return store.NewStoreError(detail.TableName(), "upsert", "upsert failed", err)
	}
	return nil
}
