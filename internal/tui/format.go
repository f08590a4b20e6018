package tui

import (
	"fmt"
	"time"

	"github.com/phrazzld/taskdeck/internal/api"
	"github.com/phrazzld/taskdeck/internal/domain"
)

// FormatDueDate renders a due date as an absolute date plus a relative
// phrase, e.g. "Jun 1, 2025 (in 3 days)".
func FormatDueDate(due, now time.Time) string {
	return fmt.Sprintf("%s (%s)", due.Format("Jan 2, 2006"), RelativeDue(due, now))
}

// RelativeDue phrases the distance between now and the due date in
// whole days: "today", "tomorrow", "in N days", "yesterday", "N days ago".
func RelativeDue(due, now time.Time) string {
	days := daysBetween(now, due)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// daysBetween counts calendar days from a to b, ignoring time of day.
// Both are compared in UTC, which is how due dates are stored.
func daysBetween(a, b time.Time) int {
	aDay := truncateToDay(a.UTC())
	bDay := truncateToDay(b.UTC())
	return int(bDay.Sub(aDay).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsOverdue reports whether a task should be flagged as overdue: past
// its due date and still pending. Completed tasks are never overdue.
func IsOverdue(t api.TaskResponse, now time.Time) bool {
	return t.Status == domain.StatusPending.String() && t.DueDate.Before(now)
}
