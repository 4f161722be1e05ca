package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusAccepted, map[string]int{"n": 1})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, w.Body.String())
}

func TestRespondWithSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/apiaries", nil)

	t.Run("with data", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithSuccess(w, req, http.StatusCreated, "Apiary created successfully", map[string]int{"id": 7})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t,
			`{"status":"success","message":"Apiary created successfully","data":{"id":7}}`,
			w.Body.String())
	})

	t.Run("without data", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithSuccess(w, req, http.StatusOK, "Apiary deleted successfully", nil)

		body := decodeBody(t, w)
		assert.NotContains(t, body, "data")
		assert.NotContains(t, body, "count")
	})
}

func TestRespondWithList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/hives", nil)
	w := httptest.NewRecorder()

	RespondWithList(w, req, http.StatusOK, "Hives retrieved successfully", []string{}, 0)

	assert.JSONEq(t,
		`{"status":"success","message":"Hives retrieved successfully","data":[],"count":0}`,
		w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		err        error
		opts       []ResponseOption
		wantStatus string
		wantLevel  string
	}{
		{
			name:       "client error",
			status:     http.StatusNotFound,
			err:        errors.New("apiary missing"),
			wantStatus: StatusFail,
			wantLevel:  "DEBUG",
		},
		{
			name:       "elevated client error",
			status:     http.StatusBadRequest,
			opts:       []ResponseOption{WithElevatedLogLevel()},
			wantStatus: StatusFail,
			wantLevel:  "WARN",
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			wantStatus: StatusFail,
			wantLevel:  "WARN",
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			err:        errors.New("dial postgres://app:pw@db:5432/apiary failed"),
			wantStatus: StatusError,
			wantLevel:  "ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewTestLogger(t)
			ctx := WithTraceID(logger.WithLogger(context.Background(), log), "trace-123")
			req := httptest.NewRequest(http.MethodGet, "/api/apiaries/1", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.status, "Something failed", tc.err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tc.wantStatus, body["status"])
			assert.Equal(t, "Something failed", body["message"])
			assert.Equal(t, "trace-123", body["trace_id"])

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "trace-123", entries[0]["trace_id"])
			if tc.err != nil {
				assert.NotContains(t, entries[0]["error"], "app:pw")
				assert.NotContains(t, w.Body.String(), tc.err.Error())
			}
		})
	}
}

func TestRespondWithErrorAndLog_FieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusBadRequest, "Validation failed", nil,
		WithFieldErrors([]FieldError{{Field: "title", Message: "is required"}}))

	assert.JSONEq(t,
		`{"status":"fail","message":"Validation failed","errors":[{"field":"title","message":"is required"}]}`,
		w.Body.String())
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, StatusFail, ErrorStatus(http.StatusBadRequest))
	assert.Equal(t, StatusFail, ErrorStatus(http.StatusNotFound))
	assert.Equal(t, StatusError, ErrorStatus(http.StatusInternalServerError))
	assert.Equal(t, StatusError, ErrorStatus(http.StatusServiceUnavailable))
}
