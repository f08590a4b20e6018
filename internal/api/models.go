package api

import (
	"strings"
	"time"

	"github.com/phrazzld/taskdeck/internal/domain"
)

// CreateTaskRequest represents the request body for creating a task.
// Priority and Status are optional; the domain fills in their defaults.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=Low Medium High"`
	DueDate     string `json:"dueDate"     validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=Pending Completed"`
}

// Normalize trims whitespace from the text fields. Length and presence
// constraints apply to the trimmed values.
func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateTaskRequest represents the request body for a partial update.
// Pointer fields distinguish "absent" from "present but empty": absent
// fields leave the stored value untouched, present fields must still
// satisfy their create-time constraints.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=Low Medium High"`
	DueDate     *string `json:"dueDate"     validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=Pending Completed"`
}

// Normalize trims whitespace from the supplied text fields.
func (r *UpdateTaskRequest) Normalize() {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

// ToPatch converts the request into a domain patch. The request must have
// passed validation first; the due date is assumed parseable here.
func (r *UpdateTaskRequest) ToPatch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		patch.Status = &s
	}
	if r.DueDate != nil {
		if due, err := ParseDueDate(*r.DueDate); err == nil {
			patch.DueDate = &due
		}
	}
	return patch
}

// dueDateLayouts are the accepted ISO-8601 shapes for the dueDate field,
// tried in order: full RFC 3339, date-time without zone, bare date.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDueDate parses an ISO-8601 due date string into a UTC time.
func ParseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HealthResponse is the body of the health check endpoint. It is the one
// response that is not envelope-wrapped.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority.String(),
		DueDate:     task.DueDate,
		Status:      task.Status.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of tasks, preserving store order.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, taskToResponse(&tasks[i]))
	}
	return responses
}
