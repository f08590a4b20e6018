package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdeck/internal/api"
)

func day(n int) time.Time {
	return time.Date(2025, time.June, n, 0, 0, 0, 0, time.UTC)
}

// fixture: four tasks with distinct priorities, statuses, and dates.
func sampleTasks() []api.TaskResponse {
	return []api.TaskResponse{
		{ID: "1", Title: "Buy groceries", Description: "milk and eggs", Priority: "Low", Status: "Pending", DueDate: day(10), CreatedAt: day(1)},
		{ID: "2", Title: "File taxes", Description: "before the deadline", Priority: "High", Status: "Pending", DueDate: day(5), CreatedAt: day(2)},
		{ID: "3", Title: "Call dentist", Description: "", Priority: "Medium", Status: "Completed", DueDate: day(8), CreatedAt: day(3)},
		{ID: "4", Title: "Groceries for party", Description: "snacks", Priority: "High", Status: "Completed", DueDate: day(2), CreatedAt: day(4)},
	}
}

func ids(tasks []api.TaskResponse) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestVisibleTasks_StatusFilter(t *testing.T) {
	t.Parallel()

	f := DefaultFilters()
	f.Status = StatusPending
	f.Sort = SortOldest

	got := VisibleTasks(sampleTasks(), f)
	assert.Equal(t, []string{"1", "2"}, ids(got))

	f.Status = StatusCompleted
	got = VisibleTasks(sampleTasks(), f)
	assert.Equal(t, []string{"3", "4"}, ids(got))
}

func TestVisibleTasks_PriorityFilter(t *testing.T) {
	t.Parallel()

	f := DefaultFilters()
	f.Priority = PriorityHigh
	f.Sort = SortOldest

	got := VisibleTasks(sampleTasks(), f)
	assert.Equal(t, []string{"2", "4"}, ids(got))
}

func TestVisibleTasks_CombinedFilters(t *testing.T) {
	t.Parallel()

	f := DefaultFilters()
	f.Status = StatusCompleted
	f.Priority = PriorityHigh

	got := VisibleTasks(sampleTasks(), f)
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestVisibleTasks_Search(t *testing.T) {
	t.Parallel()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		t.Parallel()
		f := DefaultFilters()
		f.Search = "GROCERIES"
		f.Sort = SortOldest

		got := VisibleTasks(sampleTasks(), f)
		assert.Equal(t, []string{"1", "4"}, ids(got))
	})

	t.Run("matches description", func(t *testing.T) {
		t.Parallel()
		f := DefaultFilters()
		f.Search = "deadline"

		got := VisibleTasks(sampleTasks(), f)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		t.Parallel()
		f := DefaultFilters()
		f.Search = "zzz"

		got := VisibleTasks(sampleTasks(), f)
		assert.Empty(t, got)
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		t.Parallel()
		f := DefaultFilters()
		f.Search = "  taxes  "

		got := VisibleTasks(sampleTasks(), f)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})
}

func TestVisibleTasks_Sorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sort  SortOrder
		order []string
	}{
		{"newest first by creation", SortNewest, []string{"4", "3", "2", "1"}},
		{"oldest first by creation", SortOldest, []string{"1", "2", "3", "4"}},
		{"soonest due date first", SortDueDate, []string{"4", "2", "3", "1"}},
		{"high priority first", SortPriority, []string{"2", "4", "3", "1"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := DefaultFilters()
			f.Sort = tc.sort

			got := VisibleTasks(sampleTasks(), f)
			assert.Equal(t, tc.order, ids(got))
		})
	}
}

func TestVisibleTasks_PrioritySortIsStable(t *testing.T) {
	t.Parallel()

	// Two High tasks keep their relative input order.
	tasks := []api.TaskResponse{
		{ID: "a", Priority: "High", CreatedAt: day(1)},
		{ID: "b", Priority: "High", CreatedAt: day(2)},
		{ID: "c", Priority: "Low", CreatedAt: day(3)},
	}
	f := DefaultFilters()
	f.Sort = SortPriority

	got := VisibleTasks(tasks, f)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestVisibleTasks_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	f := DefaultFilters()
	f.Sort = SortPriority

	_ = VisibleTasks(tasks, f)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(tasks),
		"canonical order must survive a view sort")
}

func TestFilterCycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusPending, NextStatusFilter(StatusAll))
	assert.Equal(t, StatusCompleted, NextStatusFilter(StatusPending))
	assert.Equal(t, StatusAll, NextStatusFilter(StatusCompleted))

	assert.Equal(t, PriorityLow, NextPriorityFilter(PriorityAll))
	assert.Equal(t, PriorityAll, NextPriorityFilter(PriorityHigh))

	assert.Equal(t, SortOldest, NextSortOrder(SortNewest))
	assert.Equal(t, SortNewest, NextSortOrder(SortPriority))
}
