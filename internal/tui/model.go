package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phrazzld/taskdeck/internal/api"
	"github.com/phrazzld/taskdeck/internal/client"
	"github.com/phrazzld/taskdeck/internal/domain"
)

// noticeDuration is how long a success notice stays on screen.
const noticeDuration = 3 * time.Second

// requestTimeout bounds each API call issued by the UI.
const requestTimeout = 10 * time.Second

// mode selects which screen the model renders.
type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

// Messages produced by commands.
type (
	tasksLoadedMsg struct{ tasks []api.TaskResponse }
	taskCreatedMsg struct{ task api.TaskResponse }
	taskUpdatedMsg struct{ task api.TaskResponse }
	taskDeletedMsg struct{ id string }
	apiErrMsg      struct{ err error }

	// noticeExpiredMsg clears the notice whose sequence number matches.
	// The sequence guards against an old timer clearing a newer notice.
	noticeExpiredMsg struct{ seq int }
)

// Model is the top-level bubbletea model for the task client.
type Model struct {
	api *client.Client

	mode    mode
	list    *TaskList
	filters Filters
	cursor  int

	form      taskForm
	deleting  string
	searching bool
	search    textinput.Model

	loading  bool
	inFlight bool

	notice    string
	noticeSeq int
	errMsg    string
}

// NewModel creates the initial model backed by the given API client.
func NewModel(apiClient *client.Client) Model {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.Width = 40

	return Model{
		api:     apiClient,
		list:    NewTaskList(),
		filters: DefaultFilters(),
		search:  search,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetchTasks()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}

	case tasksLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.list.Replace(msg.tasks)
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		m.inFlight = false
		m.list.Append(msg.task)
		m.mode = modeList
		return m.showNotice("Task created")

	case taskUpdatedMsg:
		m.inFlight = false
		m.list.ReplaceByID(msg.task)
		// An update can move the task out of the active filter, shrinking
		// the visible slice under the cursor.
		m.clampCursor()
		m.mode = modeList
		return m.showNotice("Task updated")

	case taskDeletedMsg:
		m.inFlight = false
		m.list.RemoveByID(msg.id)
		m.clampCursor()
		m.mode = modeList
		return m.showNotice("Task deleted")

	case apiErrMsg:
		m.loading = false
		m.inFlight = false
		m.errMsg = msg.err.Error()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// updateList handles keys on the list screen.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.filters.Search = ""
			m.search.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.filters.Search = m.search.Value()
			m.clampCursor()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "n":
		m.form = newCreateForm()
		m.mode = modeForm
	case "e":
		if t := m.selected(); t != nil {
			m.form = newEditForm(*t)
			m.mode = modeForm
		}
	case "d":
		if t := m.selected(); t != nil {
			m.deleting = t.ID
			m.mode = modeConfirmDelete
		}
	case " ", "t":
		if t := m.selected(); t != nil && !m.inFlight {
			m.inFlight = true
			return m, m.toggleStatus(*t)
		}

	case "s":
		m.filters.Status = NextStatusFilter(m.filters.Status)
		m.clampCursor()
	case "p":
		m.filters.Priority = NextPriorityFilter(m.filters.Priority)
		m.clampCursor()
	case "o":
		m.filters.Sort = NextSortOrder(m.filters.Sort)
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "r":
		m.loading = true
		return m, m.fetchTasks()
	}

	return m, nil
}

// updateForm handles keys on the create/edit form.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.form.nextField()
		return m, nil
	case "shift+tab", "up":
		m.form.prevField()
		return m, nil
	case "enter":
		if m.form.focus == fieldPriority {
			m.form.cyclePriority()
			return m, nil
		}
		// Enter submits from any text field once the form is complete.
		if m.form.canSubmit() && !m.inFlight {
			m.inFlight = true
			if m.form.isEdit() {
				return m, m.submitUpdate(m.form.editingID, m.form.updateRequest())
			}
			return m, m.submitCreate(m.form.createRequest())
		}
		return m, nil
	}

	if m.form.focus == fieldPriority {
		switch msg.String() {
		case " ", "left", "right":
			m.form.cyclePriority()
		}
		return m, nil
	}

	return m, m.form.update(msg)
}

// updateConfirm handles the delete confirmation prompt.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if !m.inFlight {
			m.inFlight = true
			id := m.deleting
			m.deleting = ""
			return m, m.submitDelete(id)
		}
	case "n", "N", "esc":
		m.deleting = ""
		m.mode = modeList
	}
	return m, nil
}

// visible applies the current filters to the task list.
func (m *Model) visible() []api.TaskResponse {
	return VisibleTasks(m.list.Tasks(), m.filters)
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *api.TaskResponse {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return &visible[m.cursor]
}

// clampCursor keeps the cursor inside the visible range after the
// collection or filters change.
func (m *Model) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// showNotice sets a transient success notice and schedules its expiry.
func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.errMsg = ""
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Commands.

func (m Model) fetchTasks() tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tasks, err := apiClient.FetchTasks(ctx)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) submitCreate(req api.CreateTaskRequest) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		task, err := apiClient.CreateTask(ctx, req)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return taskCreatedMsg{task: *task}
	}
}

func (m Model) submitUpdate(id string, req api.UpdateTaskRequest) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		task, err := apiClient.UpdateTask(ctx, id, req)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return taskUpdatedMsg{task: *task}
	}
}

func (m Model) submitDelete(id string) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := apiClient.DeleteTask(ctx, id); err != nil {
			return apiErrMsg{err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

// toggleStatus flips a task between Pending and Completed.
func (m Model) toggleStatus(t api.TaskResponse) tea.Cmd {
	next := domain.Status(t.Status).Toggled().String()
	return m.submitUpdate(t.ID, api.UpdateTaskRequest{Status: &next})
}

// View renders the current screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view()
	case modeConfirmDelete:
		return m.confirmView()
	default:
		return m.listView()
	}
}

func (m Model) confirmView() string {
	task := m.list.Get(m.deleting)
	title := ""
	if task != nil {
		title = task.Title
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete Task") + "\n\n")
	b.WriteString(fmt.Sprintf("Delete %q? This cannot be undone.\n\n", title))
	b.WriteString(helpStyle.Render("y: delete | n: cancel") + "\n")
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Taskdeck") + "\n\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	b.WriteString(filterStyle.Render(fmt.Sprintf("Status: %s | Priority: %s | Sort: %s",
		m.filters.Status, m.filters.Priority, sortLabel(m.filters.Sort))) + "\n")

	if m.searching {
		b.WriteString("Search: " + m.search.View() + "\n")
	} else if m.filters.Search != "" {
		b.WriteString(filterStyle.Render("Search: "+m.filters.Search) + "\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading tasks...\n")
		return b.String()
	}

	visible := m.visible()
	if len(visible) == 0 {
		if m.list.Len() == 0 {
			b.WriteString("No tasks yet. Press n to create one.\n")
		} else {
			b.WriteString("No tasks match the current filters.\n")
		}
	}

	now := time.Now()
	for i, t := range visible {
		b.WriteString(m.renderTask(t, i == m.cursor, now))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"n: new | e: edit | space: toggle | d: delete | s/p: filter | o: sort | /: search | r: refresh | q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderTask renders one list row.
func (m Model) renderTask(t api.TaskResponse, selected bool, now time.Time) string {
	check := "[ ]"
	if t.Status == domain.StatusCompleted.String() {
		check = "[x]"
	}

	badge := priorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority))
	due := FormatDueDate(t.DueDate, now)

	title := t.Title
	switch {
	case t.Status == domain.StatusCompleted.String():
		title = completedStyle.Render(title)
	case IsOverdue(t, now):
		title = overdueStyle.Render(title)
		due = overdueStyle.Render(due + " OVERDUE")
	}

	cursor := "  "
	line := fmt.Sprintf("%s%s %s %s  due %s", cursor, check, badge, title, due)
	if selected {
		cursor = "> "
		line = selectedStyle.Render(fmt.Sprintf("%s%s %s %s  due %s", cursor, check, badge, t.Title, due))
	}
	return line
}

func sortLabel(s SortOrder) string {
	switch s {
	case SortNewest:
		return "newest first"
	case SortOldest:
		return "oldest first"
	case SortDueDate:
		return "due date"
	case SortPriority:
		return "priority"
	default:
		return string(s)
	}
}
