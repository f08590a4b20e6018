package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskdeck/internal/domain"
	"github.com/phrazzld/taskdeck/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This keeps classification in one place
// and prevents leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Schema-level rejections from the store
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Domain validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrTitleEmpty),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrDueDateMissing),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. The full error is only ever logged, never
// returned to the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Task was rejected by the store"

	case errors.Is(err, domain.ErrTitleEmpty):
		return "Title cannot be empty"

	case errors.Is(err, domain.ErrTitleTooLong):
		return "Title cannot exceed 100 characters"

	case errors.Is(err, domain.ErrDescriptionTooLong):
		return "Description cannot exceed 500 characters"

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Priority must be Low, Medium, or High"

	case errors.Is(err, domain.ErrInvalidStatus):
		return "Status must be Pending or Completed"

	case errors.Is(err, domain.ErrDueDateMissing):
		return "Due date is required"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID format"

	default:
		return "An unexpected error occurred"
	}
}
