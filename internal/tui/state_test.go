package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdeck/internal/api"
)

func TestTaskList_Replace(t *testing.T) {
	t.Parallel()

	list := NewTaskList()
	list.Replace([]api.TaskResponse{{ID: "1"}, {ID: "2"}})
	assert.Equal(t, 2, list.Len())

	list.Replace(nil)
	assert.Equal(t, 0, list.Len())
	assert.NotNil(t, list.Tasks())
}

func TestTaskList_Append(t *testing.T) {
	t.Parallel()

	list := NewTaskList()
	list.Append(api.TaskResponse{ID: "1", Title: "first"})
	list.Append(api.TaskResponse{ID: "2", Title: "second"})

	tasks := list.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
}

func TestTaskList_ReplaceByID(t *testing.T) {
	t.Parallel()

	list := NewTaskList()
	list.Replace([]api.TaskResponse{
		{ID: "1", Title: "old"},
		{ID: "2", Title: "keep"},
	})

	ok := list.ReplaceByID(api.TaskResponse{ID: "1", Title: "new"})
	assert.True(t, ok)
	assert.Equal(t, "new", list.Tasks()[0].Title)
	assert.Equal(t, "keep", list.Tasks()[1].Title)

	assert.False(t, list.ReplaceByID(api.TaskResponse{ID: "nope"}))
	assert.Equal(t, 2, list.Len())
}

func TestTaskList_RemoveByID(t *testing.T) {
	t.Parallel()

	list := NewTaskList()
	list.Replace([]api.TaskResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	assert.True(t, list.RemoveByID("2"))
	assert.Equal(t, []string{"1", "3"}, ids(list.Tasks()))

	assert.False(t, list.RemoveByID("2"))
	assert.Equal(t, 2, list.Len())
}

func TestTaskList_Get(t *testing.T) {
	t.Parallel()

	list := NewTaskList()
	list.Replace([]api.TaskResponse{{ID: "1", Title: "found"}})

	got := list.Get("1")
	require.NotNil(t, got)
	assert.Equal(t, "found", got.Title)

	assert.Nil(t, list.Get("missing"))
}
