package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskdeck/internal/api"
)

func TestRelativeDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"same day regardless of hour", time.Date(2025, time.June, 10, 1, 0, 0, 0, time.UTC), "today"},
		{"next day", day(11), "tomorrow"},
		{"several days out", day(13), "in 3 days"},
		{"previous day", day(9), "yesterday"},
		{"several days past", day(5), "5 days ago"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, RelativeDue(tc.due, now))
		})
	}
}

func TestFormatDueDate(t *testing.T) {
	t.Parallel()

	now := day(10)
	assert.Equal(t, "Jun 12, 2025 (in 2 days)", FormatDueDate(day(12), now))
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	now := day(10)

	t.Run("pending past due is overdue", func(t *testing.T) {
		t.Parallel()
		task := api.TaskResponse{Status: "Pending", DueDate: day(9)}
		assert.True(t, IsOverdue(task, now))
	})

	t.Run("completed past due is not overdue", func(t *testing.T) {
		t.Parallel()
		task := api.TaskResponse{Status: "Completed", DueDate: day(9)}
		assert.False(t, IsOverdue(task, now))
	})

	t.Run("pending future due is not overdue", func(t *testing.T) {
		t.Parallel()
		task := api.TaskResponse{Status: "Pending", DueDate: day(11)}
		assert.False(t, IsOverdue(task, now))
	})
}
