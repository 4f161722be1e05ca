package api_test

import (
	"net/http"
	"testing"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiaryHandler_Create(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/apiaries", map[string]any{
		"name":      "Home Yard",
		"type":      "HOBBY",
		"latitude":  45.76,
		"longitude": 4.83,
	})

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Apiary created successfully", env.Message)
	var apiary domain.Apiary
	decodeData(t, env, &apiary)
	assert.NotZero(t, apiary.ID)
	assert.Equal(t, "Home Yard", apiary.Name)
	assert.Equal(t, domain.ApiaryTypeHobby, *apiary.Type)
}

func TestApiaryHandler_CreateValidation(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		body       any
		wantMsg    string
		wantFields []string
	}{
		{
			name:       "missing name",
			body:       map[string]any{"city": "Lyon"},
			wantMsg:    "Validation failed",
			wantFields: []string{"name"},
		},
		{
			name:       "bad enum and range",
			body:       map[string]any{"name": "Yard", "type": "SECRET", "latitude": 120},
			wantMsg:    "Validation failed",
			wantFields: []string{"type", "latitude"},
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantMsg: "Invalid request format",
		},
		{
			name:    "empty body",
			wantMsg: "Invalid request format",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPost, "/api/apiaries", tc.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tc.wantMsg, env.Message)
			if tc.wantFields != nil {
				assert.ElementsMatch(t, tc.wantFields, fieldNames(t, env))
			}
		})
	}
}

func TestApiaryHandler_GetErrors(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	tests := []struct {
		path     string
		wantCode int
		wantMsg  string
	}{
		{"/api/apiaries/abc", http.StatusBadRequest, "Invalid apiary ID"},
		{"/api/apiaries/0", http.StatusBadRequest, "Invalid apiary ID"},
		{"/api/apiaries/-4", http.StatusBadRequest, "Invalid apiary ID"},
		{"/api/apiaries/999", http.StatusNotFound, "Apiary not found"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			code, env := do(t, router, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestApiaryHandler_ListUpdateDelete(t *testing.T) {
	t.Parallel()
	router, db := newTestRouter(t)
	first := testutils.MustInsertApiary(t, db, testutils.WithApiaryName("North"))
	testutils.MustInsertApiary(t, db, testutils.WithApiaryName("South"),
		testutils.WithApiaryType(domain.ApiaryTypeCommercial))

	code, env := do(t, router, http.MethodGet, "/api/apiaries", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Apiaries retrieved successfully", env.Message)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/apiaries?type=commercial", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, *env.Count)

	code, env = do(t, router, http.MethodPut, "/api/apiaries/"+itoa(first.ID), map[string]any{"city": "Bern"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Apiary updated successfully", env.Message)
	var updated domain.Apiary
	decodeData(t, env, &updated)
	assert.Equal(t, "North", updated.Name)
	assert.Equal(t, "Bern", *updated.City)

	code, env = do(t, router, http.MethodDelete, "/api/apiaries/"+itoa(first.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Apiary deleted successfully", env.Message)
	assert.Empty(t, env.Data)

	code, _ = do(t, router, http.MethodDelete, "/api/apiaries/"+itoa(first.ID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}
