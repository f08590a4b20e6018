package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// Task-specific validation errors.
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTitleEmpty is returned when a task title is empty after trimming.
	ErrTitleEmpty = errors.New("task title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds TitleMaxLen characters.
	ErrTitleTooLong = errors.New("task title exceeds maximum length")

	// ErrDescriptionTooLong is returned when a description exceeds DescriptionMaxLen characters.
	ErrDescriptionTooLong = errors.New("task description exceeds maximum length")

	// ErrInvalidPriority is returned when a priority is outside {Low, Medium, High}.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidStatus is returned when a status is outside {Pending, Completed}.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrDueDateMissing is returned when a task has no due date.
	ErrDueDateMissing = errors.New("task due date is required")
)
