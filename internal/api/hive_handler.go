package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// HiveHandler serves /api/hives.
type HiveHandler struct {
	hives  service.HiveService
	logger *slog.Logger
}

// NewHiveHandler creates a HiveHandler.
func NewHiveHandler(hives service.HiveService, logger *slog.Logger) *HiveHandler {
	if hives == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("hive service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HiveHandler{
		hives:  hives,
		logger: logger.With(slog.String("component", "hive_handler")),
	}
}

// Create handles POST /api/hives.
func (h *HiveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHiveParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	hive, err := h.hives.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create hive")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Hive created successfully", hive)
}

// List handles GET /api/hives. Supports apiary_id, type and status filters.
func (h *HiveHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.HiveFilter{
		ApiaryID: q.id("apiary_id"),
		Type:     enum[domain.HiveType](q, "type"),
		Status:   q.str("status"),
	}
	if !q.ok(w, r) {
		return
	}
	hives, err := h.hives.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve hives")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Hives retrieved successfully", hives, len(hives))
}

// Get handles GET /api/hives/{id}.
func (h *HiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "hive")
	if !ok {
		return
	}
	hive, err := h.hives.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve hive")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Hive retrieved successfully", hive)
}

// Update handles PUT /api/hives/{id}.
func (h *HiveHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "hive")
	if !ok {
		return
	}
	var req service.UpdateHiveParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	hive, err := h.hives.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update hive")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Hive updated successfully", hive)
}

// Delete handles DELETE /api/hives/{id}.
func (h *HiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "hive")
	if !ok {
		return
	}
	if err := h.hives.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete hive")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Hive deleted successfully", nil)
}
