package postgres_test

import (
	"context"
	"testing"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"github.com/phrazzld/apiary-api/internal/store"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresHiveStore_CreateWithDetails(t *testing.T) {
	t.Parallel()

	db := testutils.NewTestDB(t)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)
	ctx := context.Background()
	apiary := testutils.MustInsertApiary(t, db)

	hive := &domain.Hive{
		ApiaryID:       apiary.ID,
		HiveIdentifier: testutils.Ptr("A-7"),
		ColonyInfo: &domain.HiveColonyInfo{
			Strength:    testutils.Ptr(7),
			Temperament: testutils.Ptr("CALM"),
		},
		QueenInfo: &domain.HiveQueen{
			HasQueen:    testutils.Ptr(true),
			QueenMarked: testutils.Ptr(false),
		},
	}
	require.NoError(t, hiveStore.Create(ctx, hive))

	got, err := hiveStore.GetByID(ctx, hive.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ColonyInfo)
	require.NotNil(t, got.QueenInfo)
	assert.Equal(t, 7, *got.ColonyInfo.Strength)
	assert.Equal(t, hive.ID, got.ColonyInfo.HiveID)
	assert.True(t, *got.QueenInfo.HasQueen)
	assert.False(t, *got.QueenInfo.QueenMarked)
}

func TestPostgresHiveStore_Upserts(t *testing.T) {
	t.Parallel()

	db := testutils.NewTestDB(t)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)
	ctx := context.Background()
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)

	t.Run("colony info insert then partial overwrite", func(t *testing.T) {
		require.NoError(t, hiveStore.UpsertColonyInfo(ctx, &domain.HiveColonyInfo{
			HiveID:      hive.ID,
			Strength:    testutils.Ptr(4),
			SupersCount: testutils.Ptr(2),
		}, []string{"strength", "supers_count"}))

		require.NoError(t, hiveStore.UpsertColonyInfo(ctx, &domain.HiveColonyInfo{
			HiveID:   hive.ID,
			Strength: testutils.Ptr(8),
		}, []string{"strength"}))

		var rows []domain.HiveColonyInfo
		require.NoError(t, db.Where("hive_id = ?", hive.ID).Find(&rows).Error)
		require.Len(t, rows, 1, "There should be one colony info row per hive")
		assert.Equal(t, 8, *rows[0].Strength)
		require.NotNil(t, rows[0].SupersCount, "Columns not listed should be kept")
		assert.Equal(t, 2, *rows[0].SupersCount)
	})

	t.Run("queen upsert", func(t *testing.T) {
		require.NoError(t, hiveStore.UpsertQueen(ctx, &domain.HiveQueen{
			HiveID:    hive.ID,
			QueenRace: testutils.Ptr("Carniolan"),
			QueenNote: testutils.Ptr("calm"),
			HasQueen:  testutils.Ptr(true),
		}, []string{"queen_race", "queen_note", "has_queen"}))

		require.NoError(t, hiveStore.UpsertQueen(ctx, &domain.HiveQueen{
			HiveID:   hive.ID,
			HasQueen: testutils.Ptr(false),
		}, []string{"has_queen"}))

		got, err := hiveStore.GetByID(ctx, hive.ID)
		require.NoError(t, err)
		require.NotNil(t, got.QueenInfo)
		assert.False(t, *got.QueenInfo.HasQueen)
		assert.Equal(t, "Carniolan", *got.QueenInfo.QueenRace)
	})
}

func TestPostgresHiveStore_List(t *testing.T) {
	t.Parallel()

	db := testutils.NewTestDB(t)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)
	ctx := context.Background()

	north := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("North"))
	south := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("South"))
	testutils.MustInsertHive(t, db, north.ID, testutils.WithHiveStatus("ACTIVE"))
	testutils.MustInsertHive(t, db, north.ID,
		testutils.WithHiveStatus("DEAD"),
		testutils.WithHiveType(domain.HiveTypeTopBar))
	testutils.MustInsertHive(t, db, south.ID)

	hives, err := hiveStore.List(ctx, store.HiveFilter{ApiaryID: &north.ID})
	require.NoError(t, err)
	assert.Len(t, hives, 2)

	hives, err = hiveStore.List(ctx, store.HiveFilter{
		ApiaryID: &north.ID,
		Status:   testutils.Ptr("DEAD"),
	})
	require.NoError(t, err)
	require.Len(t, hives, 1)
	assert.Equal(t, domain.HiveTypeTopBar, *hives[0].Type)

	hives, err = hiveStore.List(ctx, store.HiveFilter{Type: testutils.Ptr(domain.HiveTypeLangstroth)})
	require.NoError(t, err)
	assert.Len(t, hives, 2)
}

func TestPostgresHiveStore_DeleteRemovesDetails(t *testing.T) {
	t.Parallel()

	db := testutils.NewTestDB(t)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)
	ctx := context.Background()
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)
	require.NoError(t, hiveStore.UpsertColonyInfo(ctx, &domain.HiveColonyInfo{
		HiveID:   hive.ID,
		Strength: testutils.Ptr(5),
	}, []string{"strength"}))
	testutils.MustInsertTreatment(t, db, hive, testutils.Date(2024, 3, 1), nil)

	require.NoError(t, hiveStore.Delete(ctx, hive.ID))

	var count int64
	require.NoError(t, db.Model(&domain.HiveColonyInfo{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.Treatment{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err := hiveStore.GetByID(ctx, hive.ID)
	assert.ErrorIs(t, err, store.ErrHiveNotFound)
}

func TestPostgresHiveStore_MoveRecords(t *testing.T) {
	t.Parallel()

	db := testutils.NewTestDB(t)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)
	ctx := context.Background()
	from := testutils.MustInsertApiary(t, db)
	to := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("Out Yard"))
	hive := testutils.MustInsertHive(t, db, from.ID)
	other := testutils.MustInsertHive(t, db, from.ID, testutils.WithHiveIdentifier("H-2"))

	testutils.MustInsertInspection(t, db, hive, testutils.Date(2024, 5, 1))
	testutils.MustInsertFeeding(t, db, hive, testutils.Date(2024, 5, 2))
	testutils.MustInsertHarvest(t, db, hive, testutils.Date(2024, 5, 3))
	testutils.MustInsertTreatment(t, db, hive, testutils.Date(2024, 5, 4), nil)
	task := testutils.MustInsertTask(t, db, from.ID, "Add super", testutils.Date(2024, 5, 5))
	require.NoError(t, db.Model(task).Update("hive_id", hive.ID).Error)
	untouched := testutils.MustInsertFeeding(t, db, other, testutils.Date(2024, 5, 6))

	require.NoError(t, hiveStore.MoveRecords(ctx, hive.ID, to.ID))

	for _, model := range []any{
		&domain.Inspection{}, &domain.Task{}, &domain.Feeding{}, &domain.Harvest{}, &domain.Treatment{},
	} {
		var stale int64
		require.NoError(t, db.Model(model).
			Where("hive_id = ? AND apiary_id <> ?", hive.ID, to.ID).
			Count(&stale).Error)
		assert.Zero(t, stale, "%T rows left in the old apiary", model)
	}

	var feeding domain.Feeding
	require.NoError(t, db.First(&feeding, untouched.ID).Error)
	assert.Equal(t, from.ID, feeding.ApiaryID, "Records of other hives must not move")
}
