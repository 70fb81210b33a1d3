package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations.
type TaskService interface {
	// ListTasks returns all tasks ordered by ID. Never returns a nil slice
	// on success.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask stores a new, incomplete task.
	CreateTask(ctx context.Context, title, color string) (*domain.Task, error)

	// GetTask returns the task with the given ID or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask replaces title, color and completed of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, title, color string, completed bool) (*domain.Task, error)

	// DeleteTask removes a task. Returns ErrTaskNotFound if it does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// log returns the request-scoped logger when one is present in ctx.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", redact.Error(err))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, title, color string) (*domain.Task, error) {
	task := domain.NewTask(title, color)
	if err := s.taskStore.Create(ctx, task); err != nil {
		s.log(ctx).Error("failed to create task", "error", redact.Error(err))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.log(ctx).Debug("task created", "task_id", task.ID)
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to retrieve task", "error", redact.Error(err), "task_id", id)
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	title, color string,
	completed bool,
) (*domain.Task, error) {
	task := &domain.Task{ID: id}
	task.Replace(title, color, completed)

	updated, err := s.taskStore.Update(ctx, task)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to update task", "error", redact.Error(err), "task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.log(ctx).Debug("task updated", "task_id", id, "completed", updated.Completed)
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to delete task", "error", redact.Error(err), "task_id", id)
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Debug("task deleted", "task_id", id)
	return nil
}
