package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
)

// pathID parses the {id} URL parameter. It writes a 400 response and returns
// false when the id is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", resource))
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into dst and validates it. On
// failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := shared.DecodeJSON(r, dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return false
	}
	if err := shared.ValidateRequest(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgValidationFailed, err,
			shared.WithFieldErrors(shared.FieldErrors(err)))
		return false
	}
	return true
}

// queryParams reads typed list filters from a URL query. The first malformed
// parameter is remembered and reported by ok.
type queryParams struct {
	values url.Values
	bad    string
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) fail(name string) {
	if q.bad == "" {
		q.bad = name
	}
}

func (q *queryParams) raw(name string) (string, bool) {
	v := strings.TrimSpace(q.values.Get(name))
	return v, v != ""
}

func (q *queryParams) id(name string) *int64 {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		q.fail(name)
		return nil
	}
	return &n
}

func (q *queryParams) str(name string) *string {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	return &v
}

func (q *queryParams) date(name string) *time.Time {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		q.fail(name)
		return nil
	}
	return &t
}

func (q *queryParams) boolean(name string) bool {
	v, ok := q.raw(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name)
		return false
	}
	return b
}

// enum returns the upper-cased parameter as T.
func enum[T ~string](q *queryParams, name string) *T {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	e := T(strings.ToUpper(v))
	return &e
}

// ok writes the 400 response for a malformed parameter and returns false.
func (q *queryParams) ok(w http.ResponseWriter, r *http.Request) bool {
	if q.bad == "" {
		return true
	}
	shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid query parameter: "+q.bad)
	return false
}
