package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// TreatmentHandler serves /api/treatments.
type TreatmentHandler struct {
	treatments service.TreatmentService
	logger     *slog.Logger
}

// NewTreatmentHandler creates a TreatmentHandler.
func NewTreatmentHandler(treatments service.TreatmentService, logger *slog.Logger) *TreatmentHandler {
	if treatments == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("treatment service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TreatmentHandler{
		treatments: treatments,
		logger:     logger.With(slog.String("component", "treatment_handler")),
	}
}

// Create handles POST /api/treatments.
func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTreatmentParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	treatments, err := h.treatments.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create treatment")
		return
	}
	respondRecordsCreated(w, r, "Treatment", req.ApplyToAllHives, treatments)
}

// List handles GET /api/treatments.
// active_only=true keeps treatments running now: started, and not yet ended.
func (h *TreatmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.TreatmentFilter{
		ApiaryID:         q.id("apiary_id"),
		HiveID:           q.id("hive_id"),
		Disease:          q.str("disease"),
		TreatmentProduct: q.str("treatment_product"),
		FromDate:         q.date("from_date"),
		ToDate:           q.date("to_date"),
	}
	if q.boolean("active_only") {
		now := time.Now().UTC()
		filter.ActiveAt = &now
	}
	if !q.ok(w, r) {
		return
	}
	treatments, err := h.treatments.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve treatments")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Treatments retrieved successfully", treatments, len(treatments))
}

// Get handles GET /api/treatments/{id}.
func (h *TreatmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "treatment")
	if !ok {
		return
	}
	treatment, err := h.treatments.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve treatment")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Treatment retrieved successfully", treatment)
}

// Update handles PUT /api/treatments/{id}.
func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "treatment")
	if !ok {
		return
	}
	var req service.UpdateTreatmentParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	treatment, err := h.treatments.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update treatment")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Treatment updated successfully", treatment)
}

// Delete handles DELETE /api/treatments/{id}.
func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "treatment")
	if !ok {
		return
	}
	if err := h.treatments.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete treatment")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Treatment deleted successfully", nil)
}
