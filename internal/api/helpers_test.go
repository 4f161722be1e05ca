package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/apiary-api/internal/api"
	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// envelope is the decoded form of every response body.
type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Count   *int              `json:"count"`
	Errors  []json.RawMessage `json:"errors"`
}

// newTestRouter wires every handler over an in-memory database the same way
// the server mounts them.
func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db := testutils.NewTestDB(t)
	apiaryStore := postgres.NewPostgresApiaryStore(db, nil)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)

	apiaries, err := service.NewApiaryService(apiaryStore, nil)
	require.NoError(t, err)
	hives, err := service.NewHiveService(db, apiaryStore, hiveStore, nil)
	require.NoError(t, err)
	inspections, err := service.NewInspectionService(db, apiaryStore, hiveStore,
		postgres.NewPostgresInspectionStore(db, nil), nil)
	require.NoError(t, err)
	tasks, err := service.NewTaskService(apiaryStore, hiveStore, postgres.NewPostgresTaskStore(db, nil), nil)
	require.NoError(t, err)
	feedings, err := service.NewFeedingService(db, apiaryStore, hiveStore,
		postgres.NewPostgresFeedingStore(db, nil), nil)
	require.NoError(t, err)
	harvests, err := service.NewHarvestService(db, apiaryStore, hiveStore,
		postgres.NewPostgresHarvestStore(db, nil), nil)
	require.NoError(t, err)
	treatments, err := service.NewTreatmentService(db, apiaryStore, hiveStore,
		postgres.NewPostgresTreatmentStore(db, nil), nil)
	require.NoError(t, err)

	type crud interface {
		Create(http.ResponseWriter, *http.Request)
		List(http.ResponseWriter, *http.Request)
		Get(http.ResponseWriter, *http.Request)
		Update(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
	}
	mount := func(r chi.Router, path string, h crud, extra func(chi.Router)) {
		r.Route(path, func(r chi.Router) {
			r.Post("/", h.Create)
			r.Get("/", h.List)
			if extra != nil {
				extra(r)
			}
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	}

	taskHandler := api.NewTaskHandler(tasks, nil)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		mount(r, "/apiaries", api.NewApiaryHandler(apiaries, nil), nil)
		mount(r, "/hives", api.NewHiveHandler(hives, nil), nil)
		mount(r, "/inspections", api.NewInspectionHandler(inspections, nil), nil)
		mount(r, "/tasks", taskHandler, func(r chi.Router) {
			r.Get("/status/{status}", taskHandler.ListByStatus)
			r.Put("/{id}/complete", taskHandler.Complete)
		})
		mount(r, "/feedings", api.NewFeedingHandler(feedings, nil), nil)
		mount(r, "/harvests", api.NewHarvestHandler(harvests, nil), nil)
		mount(r, "/treatments", api.NewTreatmentHandler(treatments, nil), nil)
	})
	return r, db
}

// do sends a request with an optional JSON body and decodes the envelope.
func do(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

// decodeData unmarshals the envelope data into v.
func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

// fieldNames returns the field of every validation error in env.
func fieldNames(t *testing.T, env envelope) []string {
	t.Helper()
	names := make([]string, 0, len(env.Errors))
	for _, raw := range env.Errors {
		var fe struct {
			Field string `json:"field"`
		}
		require.NoError(t, json.Unmarshal(raw, &fe))
		names = append(names, fe.Field)
	}
	return names
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
