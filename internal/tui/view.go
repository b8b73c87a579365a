package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/components"
	"github.com/thenoetrevino/taskmaster/internal/tui/notifications"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.ReportFocus = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render composes the base screen, an optional modal and notifications
func (m Model) render() string {
	// Floating banners would cover the form, so it gets them in the status bar
	inline := m.UIState.Mode() == state.AddTaskMode

	statusBar := components.StatusBarProps{Width: m.UIState.Width(), Hint: m.statusHint()}
	if all := m.NotificationState.All(); inline && len(all) > 0 {
		last := all[len(all)-1]
		statusBar.Left = notifications.RenderInline(notifications.FromLevel(last.Level), last.Message)
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(m.UIState.Height()-1).Render(m.renderScreen()),
		components.RenderStatusBar(statusBar),
	)

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	if modal := m.renderModalLayer(); modal != nil {
		layers = append(layers, modal)
	}
	if !inline {
		layers = append(layers, m.NotificationState.GetLayers(notifications.RenderFromState)...)
	}

	return lipgloss.NewCanvas(layers...).Render()
}

// renderScreen renders the full-screen content behind any modal
func (m Model) renderScreen() string {
	mode := m.UIState.Mode()
	if mode == state.HelpMode || mode == state.AddTaskMode ||
		mode == state.DeleteConfirmMode || mode == state.ResetConfirmMode {
		mode = m.UIState.ReturnMode()
	}

	switch mode {
	case state.ListMode:
		return m.viewList()
	case state.DetailMode:
		return m.viewDetail()
	default:
		return m.viewHome()
	}
}

func (m Model) statusHint() string {
	switch m.UIState.Mode() {
	case state.AddTaskMode:
		return m.Config.KeyMappings.SaveForm + " save · " + m.Config.KeyMappings.Back + " cancel"
	case state.DeleteConfirmMode, state.ResetConfirmMode:
		return "y confirm · n cancel"
	default:
		return "press " + m.Config.KeyMappings.ShowHelp + " for help"
	}
}
