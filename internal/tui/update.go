package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWindowSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case storageReadyMsg:
		return m.handleStorageReady(msg)

	case tea.FocusMsg:
		// Coming back to the terminal may follow CLI edits to the same database
		if m.UIState.Mode() == state.ListMode {
			m.reloadTasks()
		}
		return m, nil
	}

	// The form consumes every other message while it is open
	if m.UIState.Mode() == state.AddTaskMode {
		return m.updateTaskForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKeyMsg(keyMsg)
	}

	return m, nil
}

func (m Model) handleStorageReady(msg storageReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("storage initialization failed", "error", msg.err)
		m.AppState.SetStorage(state.StorageFailed)
		m.NotificationState.Add(state.LevelError, "Failed to initialize database: "+msg.err.Error())
		return m, nil
	}

	m.AppState.SetStorage(state.StorageReady)
	if m.UIState.Mode() == state.ListMode {
		m.reloadTasks()
	}
	return m, nil
}

// handleKeyMsg dispatches a key press to the handler for the current mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Notifications last until the next key press
	m.NotificationState.Clear()

	switch m.UIState.Mode() {
	case state.HomeMode:
		return m.handleHomeKeys(msg)
	case state.ListMode:
		return m.handleListKeys(msg)
	case state.DetailMode:
		return m.handleDetailKeys(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.ResetConfirmMode:
		return m.handleResetConfirm(msg)
	case state.HelpMode:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

func (m Model) handleHomeKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.OpenList), msg.String() == "enter":
		m.enterList()
	case key.Matches(msg, m.Keys.Add):
		return m.openTaskForm()
	case key.Matches(msg, m.Keys.Reset):
		if m.AppState.DevMode() {
			m.UIState.SetMode(state.ResetConfirmMode)
		}
	case key.Matches(msg, m.Keys.Help):
		m.UIState.SetMode(state.HelpMode)
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Help, m.Keys.Back, m.Keys.Quit) {
		m.returnFrom(state.HelpMode)
	}
	return m, nil
}

// enterList switches to the list and reloads it
func (m *Model) enterList() {
	m.UIState.SetMode(state.ListMode)
	m.reloadTasks()
}

// returnFrom leaves a transient mode. The list is reloaded on the way back.
func (m *Model) returnFrom(current state.Mode) {
	target := m.UIState.ReturnMode()
	if target == current {
		target = state.HomeMode
	}
	if target == state.ListMode {
		m.enterList()
		return
	}
	m.UIState.SetMode(target)
}
