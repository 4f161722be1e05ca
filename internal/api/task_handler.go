package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/apiary-api/internal/api/shared"
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/store"
)

// TaskHandler serves /api/tasks.
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTaskParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	task, err := h.tasks.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Task created successfully", task)
}

// List handles GET /api/tasks.
// Supports apiary_id, hive_id, status, priority and type filters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.TaskFilter{
		ApiaryID: q.id("apiary_id"),
		HiveID:   q.id("hive_id"),
		Status:   enum[domain.TaskStatus](q, "status"),
		Priority: enum[domain.TaskPriority](q, "priority"),
		Type:     q.str("type"),
	}
	if !q.ok(w, r) {
		return
	}
	tasks, err := h.tasks.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Tasks retrieved successfully", tasks, len(tasks))
}

// ListByStatus handles GET /api/tasks/status/{status}.
// The status is matched case-insensitively; apiary_id and hive_id narrow it.
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := store.TaskFilter{
		ApiaryID: q.id("apiary_id"),
		HiveID:   q.id("hive_id"),
	}
	if !q.ok(w, r) {
		return
	}
	tasks, err := h.tasks.ListByStatus(r.Context(), chi.URLParam(r, "status"), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}
	shared.RespondWithList(w, r, http.StatusOK, "Tasks retrieved successfully", tasks, len(tasks))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "task")
	if !ok {
		return
	}
	task, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Task retrieved successfully", task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "task")
	if !ok {
		return
	}
	var req service.UpdateTaskParams
	if !decodeAndValidate(w, r, &req) {
		return
	}
	task, err := h.tasks.Update(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Task updated successfully", task)
}

// Complete handles PUT /api/tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "task")
	if !ok {
		return
	}
	task, err := h.tasks.Complete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to complete task")
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("task completed",
		slog.Int64("task_id", id))
	shared.RespondWithSuccess(w, r, http.StatusOK, "Task marked as completed", task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "task")
	if !ok {
		return
	}
	if err := h.tasks.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Task deleted successfully", nil)
}
