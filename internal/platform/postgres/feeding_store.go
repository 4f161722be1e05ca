package postgres

import (
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresFeedingStore implements store.FeedingStore.
type PostgresFeedingStore struct {
	*recordStore[domain.Feeding, store.FeedingFilter]
}

var _ store.FeedingStore = (*PostgresFeedingStore)(nil)

// NewPostgresFeedingStore creates a feeding store on db.
func NewPostgresFeedingStore(db *gorm.DB, logger *slog.Logger) *PostgresFeedingStore {
	return &PostgresFeedingStore{newRecordStore[domain.Feeding](db, logger, recordOptions[store.FeedingFilter]{
		entity:   "feeding",
		notFound: store.ErrFeedingNotFound,
		omit:     []string{clause.Associations},
		detail:   preloadApiaryAndHive,
		list: func(db *gorm.DB, f store.FeedingFilter) *gorm.DB {
			db = whereEq(db, "apiary_id", f.ApiaryID)
			db = whereEq(db, "hive_id", f.HiveID)
			db = whereEq(db, "feeding_type", f.FeedingType)
			db = whereEq(db, "food_type", f.FoodType)
			db = whereRange(db, "feeding_date", f.FromDate, f.ToDate)
			return preloadApiaryAndHive(db).Order("feeding_date DESC").Order("id DESC")
		},
	})}
}

// WithTx implements store.FeedingStore.WithTx.
func (s *PostgresFeedingStore) WithTx(tx *gorm.DB) store.FeedingStore {
	return &PostgresFeedingStore{s.withDB(tx)}
}
