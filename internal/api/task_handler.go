package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests
// It validates the payload before touching the store, so a rejected request
// never allocates a task ID.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			log.Debug("create request carried no body")
			shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
			return
		}
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// A body of {} or null carries no fields at all
	if req.IsEmpty() {
		log.Debug("create request carried no fields")
		shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("create request failed validation", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	// Create the task; the store assigns the ID
	task, err := h.taskStore.Create(
		r.Context(),
		*req.Title.Value,
		*req.Description.Value,
		*req.DueDate.Value,
		req.EffectiveStatus(),
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests
// It returns every task in insertion order; an empty store yields an empty
// JSON array, not null.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}

	log.Debug("tasks listed", slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
// Check order is fixed: an empty body reports 400 before the ID is looked
// up, an unknown ID reports 404 before field validation, and only a valid
// update reaches the store.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			log.Debug("update request carried no body")
			shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
			return
		}
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// A body of {} or null carries no fields at all
	if req.IsEmpty() {
		log.Debug("update request carried no fields")
		shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
		return
	}

	id, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return
	}

	// Existence is reported before field validation
	if _, err := h.taskStore.GetByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("update request failed validation",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	log.Debug("task updated",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      string(task.Status),
	}
}
