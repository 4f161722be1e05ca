package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// FeedingHandler serves /api/feedings.
type FeedingHandler struct {
	feedings service.FeedingService
	logger   *slog.Logger
}

// NewFeedingHandler creates a FeedingHandler.
func NewFeedingHandler(feedings service.FeedingService, logger *slog.Logger) *FeedingHandler {
	if feedings == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("feeding service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedingHandler{
		feedings: feedings,
		logger:   logger.With(slog.String("component", "feeding_handler")),
	}
}

// Create handles POST /api/feedings.
func (h *FeedingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFeedingParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	feedings, err := h.feedings.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create feeding")
		return
	}
	respondRecordsCreated(w, r, "Feeding", req.ApplyToAllHives, feedings)
}

// List handles GET /api/feedings.
func (h *FeedingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.FeedingFilter{
		ApiaryID:    q.id("apiary_id"),
		HiveID:      q.id("hive_id"),
		FeedingType: q.str("feeding_type"),
		FoodType:    q.str("food_type"),
		FromDate:    q.date("from_date"),
		ToDate:      q.date("to_date"),
	}
	if !q.ok(w, r) {
		return
	}
	feedings, err := h.feedings.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve feedings")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Feedings retrieved successfully", feedings, len(feedings))
}

// Get handles GET /api/feedings/{id}.
func (h *FeedingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "feeding")
	if !ok {
		return
	}
	feeding, err := h.feedings.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve feeding")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Feeding retrieved successfully", feeding)
}

// Update handles PUT /api/feedings/{id}.
func (h *FeedingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "feeding")
	if !ok {
		return
	}
	var req service.UpdateFeedingParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	feeding, err := h.feedings.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update feeding")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Feeding updated successfully", feeding)
}

// Delete handles DELETE /api/feedings/{id}.
func (h *FeedingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "feeding")
	if !ok {
		return
	}
	if err := h.feedings.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete feeding")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Feeding deleted successfully", nil)
}
