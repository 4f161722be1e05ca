package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
)

// TaskFields are the optional task attributes shared by create and update.
type TaskFields struct {
	StartTime   *string              `json:"start_time"  validate:"omitempty,clock"`
	EndDate     *string              `json:"end_date"    validate:"omitempty,isodate"`
	EndTime     *string              `json:"end_time"    validate:"omitempty,clock"`
	Status      *domain.TaskStatus   `json:"status"      validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED OVERDUE"`
	Priority    *domain.TaskPriority `json:"priority"    validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Type        *string              `json:"type"        validate:"omitempty,max=100"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	Reminder    *bool                `json:"reminder"`
	ReminderMe  *string              `json:"reminder_me" validate:"omitempty,max=100"`
}

func (f TaskFields) collect(out store.Fields) error {
	endDate, err := parseOptionalDate("end_date", f.EndDate)
	if err != nil {
		return err
	}
	store.Set(out, "start_time", f.StartTime)
	store.Set(out, "end_date", endDate)
	store.Set(out, "end_time", f.EndTime)
	store.Set(out, "status", f.Status)
	store.Set(out, "priority", f.Priority)
	store.Set(out, "type", f.Type)
	store.Set(out, "description", f.Description)
	store.Set(out, "reminder", f.Reminder)
	store.Set(out, "reminder_me", f.ReminderMe)
	return nil
}

// CreateTaskParams is the body of a task create request.
type CreateTaskParams struct {
	ApiaryID  int64  `json:"apiary_id"  validate:"required,gt=0"`
	HiveID    *int64 `json:"hive_id"    validate:"omitempty,gt=0"`
	Title     string `json:"title"      validate:"required,max=200"`
	StartDate string `json:"start_date" validate:"required,isodate"`
	TaskFields
}

func (p CreateTaskParams) task() (*domain.Task, error) {
	start, err := parseDate("start_date", p.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", p.EndDate)
	if err != nil {
		return nil, err
	}
	task := &domain.Task{
		ApiaryID:    p.ApiaryID,
		HiveID:      p.HiveID,
		Title:       p.Title,
		StartDate:   start,
		StartTime:   p.StartTime,
		EndDate:     end,
		EndTime:     p.EndTime,
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityNormal,
		Type:        p.Type,
		Description: p.Description,
		ReminderMe:  p.ReminderMe,
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.Reminder != nil {
		task.Reminder = *p.Reminder
	}
	return task, nil
}

// UpdateTaskParams is the body of a task update request.
type UpdateTaskParams struct {
	ApiaryID  *int64  `json:"apiary_id"  validate:"omitempty,gt=0"`
	HiveID    *int64  `json:"hive_id"    validate:"omitempty,gt=0"`
	Title     *string `json:"title"      validate:"omitempty,min=1,max=200"`
	StartDate *string `json:"start_date" validate:"omitempty,isodate"`
	TaskFields
}

// TaskService manages scheduled apiary work.
type TaskService interface {
	Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter store.TaskFilter) ([]domain.Task, error)
	// ListByStatus lists tasks whose status matches name case-insensitively.
	ListByStatus(ctx context.Context, name string, filter store.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, params UpdateTaskParams) (*domain.Task, error)
	// Complete marks a task as COMPLETED.
	Complete(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	tasks  store.TaskStore
	refs   references
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	tasks store.TaskStore,
	logger *slog.Logger,
) (TaskService, error) {
	if apiaries == nil || hives == nil || tasks == nil {
		return nil, domain.NewValidationError("stores", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		tasks:  tasks,
		refs:   references{apiaries: apiaries, hives: hives},
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if err := s.refs.requireApiary(ctx, params.ApiaryID); err != nil {
		return nil, NewServiceError("create_task", "apiary lookup failed", err)
	}
	if params.HiveID != nil {
		if err := s.refs.requireHiveInApiary(ctx, *params.HiveID, params.ApiaryID); err != nil {
			return nil, NewServiceError("create_task", "hive lookup failed", err)
		}
	}

	task, err := params.task()
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, NewServiceError("create_task", "failed to save task", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return s.Get(ctx, task.ID)
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context, filter store.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// ListByStatus implements TaskService.ListByStatus.
func (s *taskServiceImpl) ListByStatus(
	ctx context.Context,
	name string,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	status, ok := domain.ParseTaskStatus(name)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}
	filter.Status = &status
	return s.List(ctx, filter)
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, params UpdateTaskParams) (*domain.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("update_task", "failed to retrieve task", err)
	}
	if err := s.refs.checkPair(ctx, params.ApiaryID, params.HiveID, existing.ApiaryID, existing.HiveID); err != nil {
		return nil, NewServiceError("update_task", "reference check failed", err)
	}

	start, err := parseOptionalDate("start_date", params.StartDate)
	if err != nil {
		return nil, err
	}
	fields := store.Fields{}
	store.Set(fields, "apiary_id", params.ApiaryID)
	store.Set(fields, "hive_id", params.HiveID)
	store.Set(fields, "title", params.Title)
	store.Set(fields, "start_date", start)
	if err := params.TaskFields.collect(fields); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, id, fields); err != nil {
		return nil, NewServiceError("update_task", "failed to update task", err)
	}
	return s.Get(ctx, id)
}

// Complete implements TaskService.Complete.
func (s *taskServiceImpl) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	fields := store.Fields{"status": domain.TaskStatusCompleted}
	if err := s.tasks.Update(ctx, id, fields); err != nil {
		return nil, NewServiceError("complete_task", "failed to complete task", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("task completed",
		slog.Int64("task_id", id))
	return s.Get(ctx, id)
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewServiceError("delete_task", "failed to delete task", err)
	}
	return nil
}
