package domain

// Status is the closed set of task completion states.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// DefaultStatus is assigned when a task is created without an explicit status.
const DefaultStatus = StatusPending

// ParseStatus converts a wire value into a Status.
// Returns ErrInvalidStatus for any value outside the enumerated set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsValid reports whether the status is one of the enumerated values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Toggled returns the opposite status: Pending becomes Completed and
// Completed becomes Pending.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

func (s Status) String() string {
	return string(s)
}
