package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck/internal/api/shared"
	"github.com/phrazzld/taskdeck/internal/domain"
	"github.com/phrazzld/taskdeck/internal/platform/logger"
	"github.com/phrazzld/taskdeck/internal/redact"
	"github.com/phrazzld/taskdeck/internal/store"
)

// TaskHandler handles task-related HTTP requests. Each handler runs the
// same short pipeline: decode, validate, execute against the store,
// respond with the envelope.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
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

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if violations := ValidateCreateTask(&req); len(violations) > 0 {
		log.Debug("create task validation failed", slog.Int("violations", len(violations)))
		shared.RespondWithValidationErrors(w, r, violations)
		return
	}

	// Validation guarantees the due date parses.
	dueDate, err := ParseDueDate(req.DueDate)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "dueDate", Message: "Due date must be a valid date"},
		})
		return
	}

	task, err := domain.NewTask(
		req.Title,
		req.Description,
		domain.Priority(req.Priority),
		dueDate,
		domain.Status(req.Status),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		if statusCode == http.StatusInternalServerError {
			// Schema rejections aside, a failed create surfaces as a
			// store rejection, not a server fault.
			statusCode = http.StatusBadRequest
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests. Tasks are returned ordered
// ascending by due date; an empty store yields an empty list, not an error.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithList(w, r, tasksToResponse(tasks), len(tasks))
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id} requests. Only the supplied
// fields change; the resulting document is re-validated against all field
// constraints before anything is persisted.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if violations := ValidateUpdateTask(&req); len(violations) > 0 {
		log.Debug("update task validation failed",
			slog.String("task_id", id.String()),
			slog.Int("violations", len(violations)))
		shared.RespondWithValidationErrors(w, r, violations)
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := task.Apply(req.ToPatch()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		if statusCode == http.StatusInternalServerError {
			statusCode = http.StatusBadRequest
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests. The removal is hard;
// no tombstone is kept.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	shared.RespondWithMessage(w, r, "Task deleted successfully")
}

// Health handles GET /api/health requests.
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}

// taskIDFromPath extracts and parses the {id} path parameter. A malformed
// identifier is classified as a validation failure (400 with a field
// violation), not a store fault; on failure the error response has already
// been written and ok is false.
func (h *TaskHandler) taskIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("task ID not found in URL path")
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "id", Message: "Task ID is required"},
		})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(pathID)
	if err != nil {
		log.Warn("invalid task ID format", slog.String("task_id", pathID))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "id", Message: "Task ID must be a valid UUID"},
		})
		return uuid.Nil, false
	}

	return id, true
}
