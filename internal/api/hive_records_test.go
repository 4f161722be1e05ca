package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedingHandler_CreateSingle(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)

	code, env := do(t, router, http.MethodPost, "/api/feedings", map[string]any{
		"apiary_id":    apiary.ID,
		"hive_id":      hive.ID,
		"feeding_date": "2024-09-01",
		"food_type":    "fondant",
		"input_as":     "Per Hive",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.Equal(t, "Feeding created successfully", env.Message)
	assert.Nil(t, env.Count)
	var feeding domain.Feeding
	decodeData(t, env, &feeding)
	assert.Equal(t, hive.ID, *feeding.HiveID)
	require.NotNil(t, feeding.Hive)
}

func TestFeedingHandler_CreateForAllHives(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	testutils.MustInsertHive(t, db, apiary.ID)
	testutils.MustInsertHive(t, db, apiary.ID, testutils.WithHiveIdentifier("H-2"))

	code, env := do(t, router, http.MethodPost, "/api/feedings", map[string]any{
		"apiary_id":          apiary.ID,
		"apply_to_all_hives": true,
		"feeding_date":       "2024-09-01",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.Equal(t, "Feeding records created for 2 hives", env.Message)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
	var feedings []domain.Feeding
	decodeData(t, env, &feedings)
	assert.Len(t, feedings, 2)
}

func TestHiveRecordHandlers_CreateErrors(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	empty := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("Empty"))
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)

	tests := []struct {
		name     string
		path     string
		body     map[string]any
		wantCode int
		wantMsg  string
	}{
		{
			name:     "feeding without hive",
			path:     "/api/feedings",
			body:     map[string]any{"apiary_id": apiary.ID, "feeding_date": "2024-09-01"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Hive ID is required when not applying to all hives",
		},
		{
			name:     "harvest fan-out without hives",
			path:     "/api/harvests",
			body:     map[string]any{"apiary_id": empty.ID, "apply_to_all_hives": true, "harvest_date": "2024-08-01"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "No hives found in the specified apiary",
		},
		{
			name:     "harvest unknown apiary",
			path:     "/api/harvests",
			body:     map[string]any{"apiary_id": 404, "hive_id": hive.ID, "harvest_date": "2024-08-01"},
			wantCode: http.StatusNotFound,
			wantMsg:  "Apiary not found",
		},
		{
			name:     "harvest bad unit",
			path:     "/api/harvests",
			body:     map[string]any{"apiary_id": apiary.ID, "hive_id": hive.ID, "harvest_date": "2024-08-01", "unit": "ton"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Validation failed",
		},
		{
			name: "treatment ending before it starts",
			path: "/api/treatments",
			body: map[string]any{
				"apiary_id":  apiary.ID,
				"hive_id":    hive.ID,
				"start_date": "2024-10-10",
				"end_date":   "2024-10-01",
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "End date cannot be before start date",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestTreatmentHandler_ListActiveOnly(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)
	now := time.Now().UTC()
	ended := now.AddDate(0, 0, -10)
	testutils.MustInsertTreatment(t, db, hive, now.AddDate(0, 0, -30), &ended)
	running := testutils.MustInsertTreatment(t, db, hive, now.AddDate(0, 0, -5), nil)
	testutils.MustInsertTreatment(t, db, hive, now.AddDate(0, 0, 5), nil)

	code, env := do(t, router, http.MethodGet, "/api/treatments?active_only=true", nil)
	require.Equal(t, http.StatusOK, code)
	var treatments []domain.Treatment
	decodeData(t, env, &treatments)
	require.Len(t, treatments, 1)
	assert.Equal(t, running.ID, treatments[0].ID)

	code, env = do(t, router, http.MethodGet, "/api/treatments", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/treatments?active_only=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameter: active_only", env.Message)
}

func TestHarvestHandler_GetUpdateDelete(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)
	harvest := testutils.MustInsertHarvest(t, db, hive, testutils.Date(2024, 8, 1))
	path := "/api/harvests/" + itoa(harvest.ID)

	code, env := do(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Harvest retrieved successfully", env.Message)

	code, env = do(t, router, http.MethodPut, path, map[string]any{"product_type": "WAX"})
	require.Equal(t, http.StatusOK, code, env.Message)
	var updated domain.Harvest
	decodeData(t, env, &updated)
	assert.Equal(t, domain.HarvestProductWax, *updated.ProductType)

	code, env = do(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Harvest deleted successfully", env.Message)

	code, env = do(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Harvest not found", env.Message)

	code, env = do(t, router, http.MethodGet, "/api/harvests/x", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid harvest ID", env.Message)
}
