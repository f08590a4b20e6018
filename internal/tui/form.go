package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phrazzld/taskdeck/internal/api"
	"github.com/phrazzld/taskdeck/internal/domain"
)

// Field indexes into the form's focus order. The priority row is not a
// text input; it cycles through the enumerated values.
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldPriority
	fieldCount
)

// taskForm collects the fields for creating or editing a task.
type taskForm struct {
	inputs   [3]textinput.Model
	priority domain.Priority
	focus    int

	// editingID is empty for a create form and carries the task id when
	// editing an existing task.
	editingID string
}

// newCreateForm returns an empty form with defaults applied.
func newCreateForm() taskForm {
	f := taskForm{priority: domain.DefaultPriority}

	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = domain.TitleMaxLen
	title.Width = 50
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Details (optional)"
	description.CharLimit = domain.DescriptionMaxLen
	description.Width = 50

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD"
	dueDate.CharLimit = 25
	dueDate.Width = 25

	f.inputs[fieldTitle] = title
	f.inputs[fieldDescription] = description
	f.inputs[fieldDueDate] = dueDate
	return f
}

// newEditForm returns a form pre-filled from an existing task.
func newEditForm(task api.TaskResponse) taskForm {
	f := newCreateForm()
	f.editingID = task.ID
	f.inputs[fieldTitle].SetValue(task.Title)
	f.inputs[fieldDescription].SetValue(task.Description)
	f.inputs[fieldDueDate].SetValue(task.DueDate.Format("2006-01-02"))
	f.priority = domain.Priority(task.Priority)
	return f
}

// isEdit reports whether the form targets an existing task.
func (f *taskForm) isEdit() bool {
	return f.editingID != ""
}

// nextField moves focus forward, wrapping to the first field.
func (f *taskForm) nextField() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// prevField moves focus backward, wrapping to the last field.
func (f *taskForm) prevField() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *taskForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		if i == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// cyclePriority steps the priority row Low, Medium, High and back around.
func (f *taskForm) cyclePriority() {
	switch f.priority {
	case domain.PriorityLow:
		f.priority = domain.PriorityMedium
	case domain.PriorityMedium:
		f.priority = domain.PriorityHigh
	default:
		f.priority = domain.PriorityLow
	}
}

// update routes a message to the focused text input.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// title and dueDate return the trimmed field values.
func (f *taskForm) title() string {
	return strings.TrimSpace(f.inputs[fieldTitle].Value())
}

func (f *taskForm) description() string {
	return strings.TrimSpace(f.inputs[fieldDescription].Value())
}

func (f *taskForm) dueDate() string {
	return strings.TrimSpace(f.inputs[fieldDueDate].Value())
}

// canSubmit reports whether the required fields are filled. The server
// still validates; this only gates the submit action in the UI.
func (f *taskForm) canSubmit() bool {
	return f.title() != "" && f.dueDate() != ""
}

// createRequest builds the create payload from the form fields.
func (f *taskForm) createRequest() api.CreateTaskRequest {
	return api.CreateTaskRequest{
		Title:       f.title(),
		Description: f.description(),
		Priority:    f.priority.String(),
		DueDate:     f.dueDate(),
	}
}

// updateRequest builds the partial-update payload. Every form field is
// sent: an edit form shows the full document, so all fields are present
// by construction.
func (f *taskForm) updateRequest() api.UpdateTaskRequest {
	title := f.title()
	description := f.description()
	priority := f.priority.String()
	dueDate := f.dueDate()
	return api.UpdateTaskRequest{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     &dueDate,
	}
}

// view renders the form.
func (f *taskForm) view() string {
	var b strings.Builder

	heading := "New Task"
	if f.isEdit() {
		heading = "Edit Task"
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")

	labels := [3]string{"Title", "Description", "Due date"}
	for i, input := range f.inputs {
		b.WriteString(formLabelStyle.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	priorityRow := "  " + f.priority.String()
	if f.focus == fieldPriority {
		priorityRow = selectedStyle.Render("> " + f.priority.String() + " (space to change)")
	}
	b.WriteString(formLabelStyle.Render("Priority") + "\n")
	b.WriteString(priorityStyle(f.priority.String()).Render(priorityRow) + "\n\n")

	submit := "enter: save"
	if !f.canSubmit() {
		submit = "title and due date required"
	}
	b.WriteString(helpStyle.Render(submit+" | tab: next field | esc: cancel") + "\n")

	return b.String()
}
