package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// HarvestHandler serves /api/harvests.
type HarvestHandler struct {
	harvests service.HarvestService
	logger   *slog.Logger
}

// NewHarvestHandler creates a HarvestHandler.
func NewHarvestHandler(harvests service.HarvestService, logger *slog.Logger) *HarvestHandler {
	if harvests == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("harvest service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HarvestHandler{
		harvests: harvests,
		logger:   logger.With(slog.String("component", "harvest_handler")),
	}
}

// Create handles POST /api/harvests.
func (h *HarvestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHarvestParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	harvests, err := h.harvests.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create harvest")
		return
	}
	respondRecordsCreated(w, r, "Harvest", req.ApplyToAllHives, harvests)
}

// List handles GET /api/harvests, newest harvest first.
func (h *HarvestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.HarvestFilter{
		ApiaryID:    q.id("apiary_id"),
		HiveID:      q.id("hive_id"),
		ProductType: enum[domain.HarvestProduct](q, "product_type"),
		Variety:     q.str("variety"),
		FromDate:    q.date("from_date"),
		ToDate:      q.date("to_date"),
	}
	if !q.ok(w, r) {
		return
	}
	harvests, err := h.harvests.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve harvests")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Harvests retrieved successfully", harvests, len(harvests))
}

// Get handles GET /api/harvests/{id}.
func (h *HarvestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "harvest")
	if !ok {
		return
	}
	harvest, err := h.harvests.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve harvest")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Harvest retrieved successfully", harvest)
}

// Update handles PUT /api/harvests/{id}.
func (h *HarvestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "harvest")
	if !ok {
		return
	}
	var req service.UpdateHarvestParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	harvest, err := h.harvests.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update harvest")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Harvest updated successfully", harvest)
}

// Delete handles DELETE /api/harvests/{id}.
func (h *HarvestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "harvest")
	if !ok {
		return
	}
	if err := h.harvests.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete harvest")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Harvest deleted successfully", nil)
}
