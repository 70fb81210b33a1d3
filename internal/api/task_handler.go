package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// Client-facing messages. These are part of the API contract.
const (
	msgTasksRetrieved = "Tasks retrieved successfully"
	msgTaskCreated    = "Task created successfully"
	msgTaskFetched    = "Task fetched successfully"
	msgTaskUpdated    = "Task updated successfully"
	msgTaskDeleted    = "Task deleted successfully"

	msgInvalidBody      = "Invalid request body"
	msgTaskNotFound     = "Task not found"
	msgListFailed       = "Failed to fetch tasks"
	msgCreateFailed     = "Task creation failed"
	msgFetchFailed      = "Failed to fetch task"
	msgUpdateFailed     = "Task update failed"
	msgDeleteFailed     = "Task deletion failed"
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("component", "task_handler"),
	}
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgListFailed, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.Success(msgTasksRetrieved, tasks))
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Color)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgCreateFailed, err)
		return
	}

	h.log(r).Info("task created", "task_id", task.ID)
	shared.RespondWithEnvelope(w, r, http.StatusCreated, shared.Success(msgTaskCreated, *task))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgFetchFailed, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.Success(msgTaskFetched, *task))
}

// UpdateTask handles POST and PUT /tasks/{id} requests. The body replaces
// title, color and completed; omitted fields are written as zero values.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.Title, req.Color, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUpdateFailed, err)
		return
	}

	h.log(r).Info("task updated", "task_id", task.ID)
	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.Success(msgTaskUpdated, *task))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, msgTaskNotFound, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgDeleteFailed, err)
		return
	}

	h.log(r).Info("task deleted", "task_id", id)
	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.SuccessMessage(msgTaskDeleted))
}

// NotFound answers requests for unknown routes.
func (h *TaskHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgRouteNotFound)
}

// MethodNotAllowed answers requests using an unsupported method on a known route.
func (h *TaskHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

func (h *TaskHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}
