// Package tui implements the terminal client for the task API: a list
// view with filtering, sorting and search, a create form, and inline
// status toggling and deletion.
package tui

import "github.com/phrazzld/taskdeck/internal/api"

// TaskList is the single owner of the client's task collection. Every
// mutation flows through one of its methods; views read from Tasks and
// never hold their own copies.
type TaskList struct {
	tasks []api.TaskResponse
}

// NewTaskList creates an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{tasks: []api.TaskResponse{}}
}

// Replace swaps the entire collection, preserving the given order.
func (l *TaskList) Replace(tasks []api.TaskResponse) {
	if tasks == nil {
		tasks = []api.TaskResponse{}
	}
	l.tasks = tasks
}

// Append adds a task to the end of the collection.
func (l *TaskList) Append(task api.TaskResponse) {
	l.tasks = append(l.tasks, task)
}

// ReplaceByID substitutes the task with a matching id. Returns false if
// no task has that id.
func (l *TaskList) ReplaceByID(task api.TaskResponse) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == task.ID {
			l.tasks[i] = task
			return true
		}
	}
	return false
}

// RemoveByID deletes the task with the given id. Returns false if no
// task has that id.
func (l *TaskList) RemoveByID(id string) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the task with the given id, or nil.
func (l *TaskList) Get(id string) *api.TaskResponse {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return &l.tasks[i]
		}
	}
	return nil
}

// Tasks returns the collection in its current order. Callers must not
// mutate the returned slice.
func (l *TaskList) Tasks() []api.TaskResponse {
	return l.tasks
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}
