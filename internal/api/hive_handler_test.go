package api_test

import (
	"net/http"
	"testing"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiveHandler_CreateWithDetails(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)

	code, env := do(t, router, http.MethodPost, "/api/hives", map[string]any{
		"apiary_id":       apiary.ID,
		"hive_identifier": "B-7",
		"type":            "LANGSTROTH",
		"colony_info":     map[string]any{"strength": 60, "frames_count": 10},
		"queen_info":      map[string]any{"has_queen": true, "queen_hatched_year": 2023},
	})

	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.Equal(t, "Hive created successfully", env.Message)
	var hive domain.Hive
	decodeData(t, env, &hive)
	require.NotNil(t, hive.ColonyInfo)
	assert.Equal(t, 60, *hive.ColonyInfo.Strength)
	require.NotNil(t, hive.QueenInfo)
	assert.Equal(t, 2023, *hive.QueenInfo.QueenHatchedYear)
}

func TestHiveHandler_CreateErrors(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)

	tests := []struct {
		name      string
		body      map[string]any
		wantCode  int
		wantMsg   string
		wantField string
	}{
		{
			name:     "unknown apiary",
			body:     map[string]any{"apiary_id": 999},
			wantCode: http.StatusNotFound,
			wantMsg:  "Apiary not found",
		},
		{
			name:      "missing apiary",
			body:      map[string]any{"hive_identifier": "X"},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Validation failed",
			wantField: "apiary_id",
		},
		{
			name:      "colony strength out of range",
			body:      map[string]any{"apiary_id": apiary.ID, "colony_info": map[string]any{"strength": 150}},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Validation failed",
			wantField: "colony_info.strength",
		},
		{
			name:      "queen year in the future",
			body:      map[string]any{"apiary_id": apiary.ID, "queen_info": map[string]any{"queen_hatched_year": 2999}},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Validation failed",
			wantField: "queen_info.queen_hatched_year",
		},
		{
			name:      "bad created date",
			body:      map[string]any{"apiary_id": apiary.ID, "created_date": "someday"},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Validation failed",
			wantField: "created_date",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPost, "/api/hives", tc.body)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMsg, env.Message)
			if tc.wantField != "" {
				assert.Equal(t, []string{tc.wantField}, fieldNames(t, env))
			}
		})
	}
}

func TestHiveHandler_ListFilters(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	other := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("Other"))
	testutils.MustInsertHive(t, db, apiary.ID)
	testutils.MustInsertHive(t, db, apiary.ID, testutils.WithHiveIdentifier("H-2"))
	testutils.MustInsertHive(t, db, other.ID)

	code, env := do(t, router, http.MethodGet, "/api/hives?apiary_id="+itoa(apiary.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hives retrieved successfully", env.Message)
	assert.Equal(t, 2, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/hives?apiary_id=first", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameter: apiary_id", env.Message)
}

func TestHiveHandler_Update(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	apiary := testutils.MustInsertApiary(t, db)
	hive := testutils.MustInsertHive(t, db, apiary.ID)

	code, env := do(t, router, http.MethodPut, "/api/hives/"+itoa(hive.ID), map[string]any{
		"status":     "SOLD",
		"queen_info": map[string]any{"queen_race": "Carniolan"},
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "Hive updated successfully", env.Message)
	var updated domain.Hive
	decodeData(t, env, &updated)
	assert.Equal(t, "SOLD", *updated.Status)
	require.NotNil(t, updated.QueenInfo)
	assert.Equal(t, "Carniolan", *updated.QueenInfo.QueenRace)

	code, env = do(t, router, http.MethodPut, "/api/hives/12345", map[string]any{"status": "X"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Hive not found", env.Message)
}
