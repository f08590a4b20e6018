package tui

import (
	"sort"
	"strings"

	"github.com/phrazzld/taskdeck/internal/api"
	"github.com/phrazzld/taskdeck/internal/domain"
)

// StatusFilter narrows the visible tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "All"
	StatusPending   StatusFilter = "Pending"
	StatusCompleted StatusFilter = "Completed"
)

// PriorityFilter narrows the visible tasks by priority.
type PriorityFilter string

const (
	PriorityAll    PriorityFilter = "All"
	PriorityLow    PriorityFilter = "Low"
	PriorityMedium PriorityFilter = "Medium"
	PriorityHigh   PriorityFilter = "High"
)

// SortOrder selects the ordering of the visible tasks.
type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortDueDate  SortOrder = "dueDate"
	SortPriority SortOrder = "priority"
)

// statusFilterCycle and priorityFilterCycle define the order the UI
// steps through when the user cycles a filter.
var (
	statusFilterCycle   = []StatusFilter{StatusAll, StatusPending, StatusCompleted}
	priorityFilterCycle = []PriorityFilter{PriorityAll, PriorityLow, PriorityMedium, PriorityHigh}
	sortOrderCycle      = []SortOrder{SortNewest, SortOldest, SortDueDate, SortPriority}
)

// NextStatusFilter returns the filter after f in the cycle.
func NextStatusFilter(f StatusFilter) StatusFilter {
	return cycleNext(statusFilterCycle, f)
}

// NextPriorityFilter returns the filter after f in the cycle.
func NextPriorityFilter(f PriorityFilter) PriorityFilter {
	return cycleNext(priorityFilterCycle, f)
}

// NextSortOrder returns the sort order after s in the cycle.
func NextSortOrder(s SortOrder) SortOrder {
	return cycleNext(sortOrderCycle, s)
}

func cycleNext[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// Filters is the full set of view criteria applied to the task list.
// The zero value is not useful; use DefaultFilters.
type Filters struct {
	Status   StatusFilter
	Priority PriorityFilter
	Search   string
	Sort     SortOrder
}

// DefaultFilters shows everything, newest first.
func DefaultFilters() Filters {
	return Filters{
		Status:   StatusAll,
		Priority: PriorityAll,
		Sort:     SortNewest,
	}
}

// VisibleTasks applies the filters and sort to the collection and returns
// a new slice. The input is never mutated, so the canonical order held by
// the TaskList survives any sort the view asks for.
func VisibleTasks(tasks []api.TaskResponse, f Filters) []api.TaskResponse {
	visible := make([]api.TaskResponse, 0, len(tasks))
	query := strings.ToLower(strings.TrimSpace(f.Search))

	for _, t := range tasks {
		if f.Status != StatusAll && t.Status != string(f.Status) {
			continue
		}
		if f.Priority != PriorityAll && t.Priority != string(f.Priority) {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		visible = append(visible, t)
	}

	sortTasks(visible, f.Sort)
	return visible
}

// matchesQuery reports whether the lowercased query appears in the
// task's title or description.
func matchesQuery(t api.TaskResponse, query string) bool {
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// sortTasks orders tasks in place. All sorts are stable so that tasks
// tied on the key keep their incoming relative order.
func sortTasks(tasks []api.TaskResponse, order SortOrder) {
	switch order {
	case SortNewest:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return domain.Priority(tasks[i].Priority).Rank() > domain.Priority(tasks[j].Priority).Rank()
		})
	}
}
