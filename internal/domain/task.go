package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field length limits enforced by Validate and mirrored by the API
// validation layer and the database schema.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Task represents one to-do item. The store assigns ID, CreatedAt and
// UpdatedAt at creation; ID is immutable for the task's lifetime.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask creates a Task with the given fields, trimming text fields and
// filling in defaults for priority and status when empty. It generates a
// new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(title, description string, priority Priority, dueDate time.Time, status Status) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}
	if status == "" {
		status = DefaultStatus
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks every field constraint on the task. It is a full
// re-validation: partial updates must call it on the resulting document,
// not just on the changed fields.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleEmpty
	}
	if len([]rune(t.Title)) > TitleMaxLen {
		return ErrTitleTooLong
	}
	if len([]rune(t.Description)) > DescriptionMaxLen {
		return ErrDescriptionTooLong
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if t.DueDate.IsZero() {
		return ErrDueDateMissing
	}
	return nil
}

// IsOverdue reports whether the task's due date is earlier than now and
// the task is still pending. Completed tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && t.DueDate.Before(now)
}

// TaskPatch carries a partial update. Nil fields are left untouched when
// the patch is applied.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	Status      *Status
}

// Apply merges the patch into the task, re-validates the resulting
// document against all field constraints and refreshes UpdatedAt.
// On validation failure the task is left unchanged.
func (t *Task) Apply(patch TaskPatch) error {
	updated := *t
	if patch.Title != nil {
		updated.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		updated.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		updated.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*t = updated
	return nil
}
