package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// InspectionHandler serves /api/inspections.
type InspectionHandler struct {
	inspections service.InspectionService
	logger      *slog.Logger
}

// NewInspectionHandler creates an InspectionHandler.
func NewInspectionHandler(inspections service.InspectionService, logger *slog.Logger) *InspectionHandler {
	if inspections == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("inspection service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &InspectionHandler{
		inspections: inspections,
		logger:      logger.With(slog.String("component", "inspection_handler")),
	}
}

// Create handles POST /api/inspections.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateInspectionParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	inspection, err := h.inspections.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create inspection")
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("inspection created",
		slog.Int64("inspection_id", inspection.ID),
		slog.Int64("hive_id", inspection.HiveID))
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Inspection created successfully", inspection)
}

// List handles GET /api/inspections.
// Supports apiary_id, hive_id, from_date and to_date filters.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.InspectionFilter{
		ApiaryID: q.id("apiary_id"),
		HiveID:   q.id("hive_id"),
		FromDate: q.date("from_date"),
		ToDate:   q.date("to_date"),
	}
	if !q.ok(w, r) {
		return
	}
	inspections, err := h.inspections.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve inspections")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Inspections retrieved successfully",
		inspections, len(inspections))
}

// Get handles GET /api/inspections/{id}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "inspection")
	if !ok {
		return
	}
	inspection, err := h.inspections.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve inspection")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Inspection retrieved successfully", inspection)
}

// Update handles PUT /api/inspections/{id}.
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "inspection")
	if !ok {
		return
	}
	var req service.UpdateInspectionParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	inspection, err := h.inspections.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update inspection")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Inspection updated successfully", inspection)
}

// Delete handles DELETE /api/inspections/{id}.
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "inspection")
	if !ok {
		return
	}
	if err := h.inspections.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete inspection")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Inspection deleted successfully", nil)
}
