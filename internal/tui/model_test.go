package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdeck/internal/api"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(tasks ...api.TaskResponse) Model {
	m := NewModel(nil)
	updated, _ := m.Update(tasksLoadedMsg{tasks: tasks})
	return updated.(Model)
}

func TestModel_LoadReplacesCollection(t *testing.T) {
	t.Parallel()

	m := loadedModel(
		api.TaskResponse{ID: "1", Title: "a", Priority: "Low", Status: "Pending"},
		api.TaskResponse{ID: "2", Title: "b", Priority: "High", Status: "Pending"},
	)

	assert.False(t, m.loading)
	assert.Equal(t, 2, m.list.Len())
}

func TestModel_CreateFlow(t *testing.T) {
	t.Parallel()

	m := loadedModel()

	updated, _ := m.Update(key("n"))
	m = updated.(Model)
	assert.Equal(t, modeForm, m.mode)
	assert.False(t, m.form.isEdit())

	created := api.TaskResponse{ID: "9", Title: "fresh", Priority: "Medium", Status: "Pending"}
	updated, cmd := m.Update(taskCreatedMsg{task: created})
	m = updated.(Model)

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 1, m.list.Len())
	assert.Equal(t, "Task created", m.notice)
	assert.NotNil(t, cmd, "a notice expiry must be scheduled")
}

func TestModel_NoticeExpiry(t *testing.T) {
	t.Parallel()

	m := loadedModel()
	updated, _ := m.Update(taskCreatedMsg{task: api.TaskResponse{ID: "1"}})
	m = updated.(Model)
	require.Equal(t, "Task created", m.notice)
	seq := m.noticeSeq

	t.Run("stale timer does not clear a newer notice", func(t *testing.T) {
		updated, _ := m.Update(noticeExpiredMsg{seq: seq - 1})
		got := updated.(Model)
		assert.Equal(t, "Task created", got.notice)
	})

	t.Run("matching timer clears the notice", func(t *testing.T) {
		updated, _ := m.Update(noticeExpiredMsg{seq: seq})
		got := updated.(Model)
		assert.Empty(t, got.notice)
	})
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()

	task := api.TaskResponse{ID: "1", Title: "doomed", Priority: "Low", Status: "Pending"}
	m := loadedModel(task)

	updated, _ := m.Update(key("d"))
	m = updated.(Model)
	assert.Equal(t, modeConfirmDelete, m.mode)
	assert.Equal(t, "1", m.deleting)

	t.Run("n cancels without removing", func(t *testing.T) {
		updated, _ := m.Update(key("n"))
		got := updated.(Model)
		assert.Equal(t, modeList, got.mode)
		assert.Equal(t, 1, got.list.Len())
	})

	t.Run("y issues the delete", func(t *testing.T) {
		updated, cmd := m.Update(key("y"))
		got := updated.(Model)
		assert.True(t, got.inFlight)
		require.NotNil(t, cmd)

		updated, _ = got.Update(taskDeletedMsg{id: "1"})
		got = updated.(Model)
		assert.Equal(t, 0, got.list.Len())
		assert.Equal(t, "Task deleted", got.notice)
	})
}

func TestModel_ToggleBlockedWhileInFlight(t *testing.T) {
	t.Parallel()

	task := api.TaskResponse{ID: "1", Title: "t", Priority: "Low", Status: "Pending"}
	m := loadedModel(task)
	m.inFlight = true

	_, cmd := m.Update(key("t"))
	assert.Nil(t, cmd, "no second request while one is in flight")
}

func TestModel_UpdateReplacesTaskInPlace(t *testing.T) {
	t.Parallel()

	m := loadedModel(
		api.TaskResponse{ID: "1", Title: "a", Priority: "Low", Status: "Pending"},
		api.TaskResponse{ID: "2", Title: "b", Priority: "Low", Status: "Pending"},
	)

	updated, _ := m.Update(taskUpdatedMsg{task: api.TaskResponse{ID: "2", Title: "b", Priority: "Low", Status: "Completed"}})
	m = updated.(Model)

	tasks := m.list.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Pending", tasks[0].Status)
	assert.Equal(t, "Completed", tasks[1].Status)
	assert.Equal(t, "Task updated", m.notice)
}

func TestModel_UpdateClampsCursorUnderActiveFilter(t *testing.T) {
	t.Parallel()

	m := loadedModel(
		api.TaskResponse{ID: "1", Title: "a", Priority: "Low", Status: "Pending", CreatedAt: day(1)},
		api.TaskResponse{ID: "2", Title: "b", Priority: "Low", Status: "Pending", CreatedAt: day(2)},
	)
	m.filters.Status = StatusPending
	m.cursor = 1

	// With the newest-first sort the cursor sits on task 1. Completing it
	// removes it from the Pending view; the cursor must land on a task
	// that is still visible.
	updated, _ := m.Update(taskUpdatedMsg{task: api.TaskResponse{
		ID: "1", Title: "a", Priority: "Low", Status: "Completed", CreatedAt: day(1),
	}})
	m = updated.(Model)

	require.Len(t, m.visible(), 1)
	assert.Equal(t, 0, m.cursor)
	require.NotNil(t, m.selected())
	assert.Equal(t, "2", m.selected().ID)
}

func TestModel_FilterCursorClamping(t *testing.T) {
	t.Parallel()

	m := loadedModel(
		api.TaskResponse{ID: "1", Title: "a", Priority: "Low", Status: "Pending", CreatedAt: day(1)},
		api.TaskResponse{ID: "2", Title: "b", Priority: "Low", Status: "Completed", CreatedAt: day(2)},
	)
	m.cursor = 1

	// Narrowing to Pending leaves one visible task; the cursor must follow.
	updated, _ := m.Update(key("s"))
	m = updated.(Model)
	assert.Equal(t, StatusPending, m.filters.Status)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ErrorSurfacedAndCleared(t *testing.T) {
	t.Parallel()

	m := loadedModel()
	updated, _ := m.Update(apiErrMsg{err: assert.AnError})
	m = updated.(Model)
	assert.NotEmpty(t, m.errMsg)
	assert.False(t, m.inFlight)

	// The next success clears the error.
	updated, _ = m.Update(taskCreatedMsg{task: api.TaskResponse{ID: "1"}})
	m = updated.(Model)
	assert.Empty(t, m.errMsg)
}

func TestModel_FormEnterBlockedUntilComplete(t *testing.T) {
	t.Parallel()

	m := loadedModel()
	updated, _ := m.Update(key("n"))
	m = updated.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "an incomplete form must not submit")
	assert.False(t, m.inFlight)
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, daysBetween(a, b))
}
