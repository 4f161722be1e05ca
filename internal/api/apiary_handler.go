package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// ApiaryHandler serves /api/apiaries.
type ApiaryHandler struct {
	apiaries service.ApiaryService
	logger   *slog.Logger
}

// NewApiaryHandler creates an ApiaryHandler.
func NewApiaryHandler(apiaries service.ApiaryService, logger *slog.Logger) *ApiaryHandler {
	if apiaries == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("apiary service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ApiaryHandler{
		apiaries: apiaries,
		logger:   logger.With(slog.String("component", "apiary_handler")),
	}
}

// Create handles POST /api/apiaries.
func (h *ApiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateApiaryParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	apiary, err := h.apiaries.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create apiary")
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("apiary created",
		slog.Int64("apiary_id", apiary.ID))
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Apiary created successfully", apiary)
}

// List handles GET /api/apiaries. Supports the type filter.
func (h *ApiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.ApiaryFilter{Type: enum[domain.ApiaryType](q, "type")}
	if !q.ok(w, r) {
		return
	}
	apiaries, err := h.apiaries.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve apiaries")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Apiaries retrieved successfully", apiaries, len(apiaries))
}

// Get handles GET /api/apiaries/{id}.
func (h *ApiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "apiary")
	if !ok {
		return
	}
	apiary, err := h.apiaries.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve apiary")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Apiary retrieved successfully", apiary)
}

// Update handles PUT /api/apiaries/{id}.
func (h *ApiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "apiary")
	if !ok {
		return
	}
	var req service.UpdateApiaryParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	apiary, err := h.apiaries.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update apiary")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Apiary updated successfully", apiary)
}

// Delete handles DELETE /api/apiaries/{id}.
func (h *ApiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "apiary")
	if !ok {
		return
	}
	if err := h.apiaries.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete apiary")
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Info("apiary deleted",
		slog.Int64("apiary_id", id))
	shared.RespondWithSuccess(w, r, http.StatusOK, "Apiary deleted successfully", nil)
}
