package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
)

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.deleteSelected()
	case key.Matches(msg, m.Keys.Cancel):
		m.returnFrom(state.DeleteConfirmMode)
	}
	return m, nil
}

func (m Model) handleResetConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.resetTasks()
		m.UIState.SetMode(state.HomeMode)
	case key.Matches(msg, m.Keys.Cancel):
		m.UIState.SetMode(state.HomeMode)
	}
	return m, nil
}
