package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countHives(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Hive{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	t.Parallel()
	db := testutils.NewTestDB(t)
	apiary := testutils.MustInsertApiary(t, db)

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		for _, id := range []string{"A", "B"} {
			if err := tx.Create(&domain.Hive{ApiaryID: apiary.ID, HiveIdentifier: testutils.Ptr(id)}).Error; err != nil {
				return err
			}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), countHives(t, db))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	t.Parallel()
	db := testutils.NewTestDB(t)
	apiary := testutils.MustInsertApiary(t, db)
	errFanOut := errors.New("second hive rejected")

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Create(&domain.Hive{ApiaryID: apiary.ID}).Error; err != nil {
			return err
		}
		return errFanOut
	})

	assert.ErrorIs(t, err, errFanOut)
	assert.Equal(t, int64(0), countHives(t, db))
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	t.Parallel()
	db := testutils.NewTestDB(t)
	apiary := testutils.MustInsertApiary(t, db)

	assert.PanicsWithValue(t, "boom", func() {
		_ = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
			if err := tx.Create(&domain.Hive{ApiaryID: apiary.ID}).Error; err != nil {
				return err
			}
			panic("boom")
		})
	})
	assert.Equal(t, int64(0), countHives(t, db))
}

func TestRunInTransaction_BeginFailure(t *testing.T) {
	t.Parallel()
	db := testutils.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		return nil
	})
	assert.ErrorIs(t, err, store.ErrTransactionFailed)
}
