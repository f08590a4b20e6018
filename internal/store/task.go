package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store. The task must already be
	// valid according to domain validation rules; schema-level rejections
	// surface as ErrInvalidEntity.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves every task, ordered ascending by due date.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update persists all mutable fields of an existing task, including
	// its UpdatedAt timestamp. Returns ErrTaskNotFound if the task does
	// not exist and ErrInvalidEntity on schema-level rejection.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. The removal is
	// hard: no tombstone is kept. Returns ErrTaskNotFound if the task
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
