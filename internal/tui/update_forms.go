package tui

import (
	"errors"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
	"github.com/thenoetrevino/taskmaster/internal/tui/huhforms"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
)

// openTaskForm shows a fresh add-task form
func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.FormState.Reset()
	m.buildTaskForm()
	m.UIState.SetMode(state.AddTaskMode)
	return m, m.FormState.TaskForm.Init()
}

// buildTaskForm creates the form over the current field values
func (m *Model) buildTaskForm() {
	lines := max(m.UIState.Height()/6, 3)
	m.FormState.TaskForm = huhforms.CreateTaskForm(huhforms.TaskFormValues{
		Title:       &m.FormState.FormTitle,
		Description: &m.FormState.FormDescription,
		Priority:    &m.FormState.FormPriority,
		Confirm:     &m.FormState.FormConfirm,
	}, lines).WithTheme(huhforms.CreateTaskmasterTheme(m.Config.ColorScheme))
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, m.Keys.Back):
			return m.cancelTaskForm()
		case key.Matches(keyMsg, m.Keys.Save):
			return m.submitTaskForm()
		}
	}

	if m.FormState.TaskForm == nil {
		return m.cancelTaskForm()
	}

	form, cmd := m.FormState.TaskForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.FormState.TaskForm = f
	}

	switch m.FormState.TaskForm.State {
	case huh.StateCompleted:
		if !m.FormState.FormConfirm {
			return m.cancelTaskForm()
		}
		return m.submitTaskForm()
	case huh.StateAborted:
		return m.cancelTaskForm()
	}

	return m, cmd
}

// cancelTaskForm discards the form and goes back to where it was opened from
func (m Model) cancelTaskForm() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	m.FormState.Reset()
	m.returnFrom(state.AddTaskMode)
	return m, tea.ClearScreen
}

// submitTaskForm creates the task. Validation failures keep the form open
// with what the user typed.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	title := strings.TrimSpace(m.FormState.FormTitle)
	if title == "" {
		m.NotificationState.Add(state.LevelWarning, "Please enter a task title")
		return m.reopenTaskForm()
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	id, err := m.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: m.FormState.FormDescription,
		Priority:    m.FormState.FormPriority,
	})
	if res := taskservice.CreatedResult(id, err); !res.Success {
		if errors.Is(err, taskservice.ErrTitleTooLong) {
			m.NotificationState.Add(state.LevelWarning, "Task title is too long")
		} else {
			slog.Error("failed to create task", "error", res.Error)
			m.NotificationState.Add(state.LevelError, "Failed to create task")
		}
		return m.reopenTaskForm()
	}

	m.FormState.Reset()
	m.UIState.SetSelectedTask(0)
	m.enterList()
	return m, tea.ClearScreen
}

func (m Model) reopenTaskForm() (tea.Model, tea.Cmd) {
	m.FormState.FormConfirm = true
	m.buildTaskForm()
	return m, m.FormState.TaskForm.Init()
}
