package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskmaster/internal/database"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
)

func (m Model) handleListKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	count := len(m.AppState.Tasks())

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Up):
		m.UIState.MoveSelection(-1, count)
	case key.Matches(msg, m.Keys.Down):
		m.UIState.MoveSelection(1, count)
	case key.Matches(msg, m.Keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.Keys.Delete):
		if m.selectedTask() != nil {
			m.UIState.SetMode(state.DeleteConfirmMode)
		}
	case key.Matches(msg, m.Keys.View):
		if m.selectedTask() != nil {
			m.UIState.SetMode(state.DetailMode)
		}
	case key.Matches(msg, m.Keys.Add):
		return m.openTaskForm()
	case key.Matches(msg, m.Keys.Refresh):
		m.reloadTasks()
	case key.Matches(msg, m.Keys.Back):
		m.UIState.SetMode(state.HomeMode)
	case key.Matches(msg, m.Keys.Help):
		m.UIState.SetMode(state.HelpMode)
	}

	m.UIState.EnsureVisible(m.visibleRows())
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Back, m.Keys.View):
		m.enterList()
	case key.Matches(msg, m.Keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.Keys.Delete):
		if m.selectedTask() != nil {
			m.UIState.SetMode(state.DeleteConfirmMode)
		}
	case key.Matches(msg, m.Keys.Help):
		m.UIState.SetMode(state.HelpMode)
	}
	return m, nil
}

// toggleSelected flips the highlighted task using the state shown on screen
func (m *Model) toggleSelected() {
	task := m.selectedTask()
	if task == nil {
		return
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	res := taskservice.ChangedResult(m.TaskService.ToggleTaskCompletion(ctx, task.ID, task.Completed))
	switch {
	case !res.Success:
		slog.Error("failed to update task", "id", task.ID, "error", res.Error)
		m.NotificationState.Add(state.LevelError, "Failed to update task")
	case res.Changes == 0:
		m.NotificationState.Add(state.LevelWarning, "Task no longer exists")
	}

	m.reloadTasks()
}

// deleteSelected removes the highlighted task and reloads the list
func (m *Model) deleteSelected() {
	task := m.selectedTask()
	if task == nil {
		return
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	res := taskservice.ChangedResult(m.TaskService.DeleteTask(ctx, task.ID))
	switch {
	case !res.Success:
		slog.Error("failed to delete task", "id", task.ID, "error", res.Error)
		m.NotificationState.Add(state.LevelError, "Failed to delete task")
	case res.Changes == 0:
		m.NotificationState.Add(state.LevelWarning, "Task no longer exists")
	default:
		m.NotificationState.Add(state.LevelInfo, "Task deleted")
	}

	m.enterList()
}

// resetTasks discards every task; only offered in dev mode
func (m *Model) resetTasks() {
	ctx, cancel := m.DbContext()
	defer cancel()

	err := m.TaskService.Reset(ctx)
	switch {
	case err == nil:
		m.NotificationState.Add(state.LevelInfo, "All tasks deleted")
	case errors.Is(err, database.ErrResetDisabled):
		m.NotificationState.Add(state.LevelWarning, "Reset is only available in dev mode")
	default:
		slog.Error("failed to reset tasks", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to reset tasks")
	}

	m.AppState.SetTasks(nil)
	m.UIState.SetSelectedTask(0)
}
