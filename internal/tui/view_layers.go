package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/layers"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

// renderModalLayer returns the overlay for the current mode, if any
func (m Model) renderModalLayer() *lipgloss.Layer {
	var content string
	switch m.UIState.Mode() {
	case state.AddTaskMode:
		content = m.renderTaskForm()
	case state.DeleteConfirmMode:
		content = m.renderDeleteConfirm()
	case state.ResetConfirmMode:
		content = m.renderResetConfirm()
	case state.HelpMode:
		content = m.renderHelp()
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderTaskForm() string {
	if m.FormState.TaskForm == nil {
		return ""
	}

	width := min(max(m.UIState.Width()*6/10, 40), m.UIState.Width())
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Bold(true).Render("New Task")

	return modalStyle(theme.Create).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.FormState.TaskForm.View()))
}

func (m Model) renderDeleteConfirm() string {
	task := m.selectedTask()
	if task == nil {
		return ""
	}
	return confirmDialog(
		"Delete task?",
		fmt.Sprintf("%q will be removed permanently.", task.Title),
	)
}

func (m Model) renderResetConfirm() string {
	return confirmDialog(
		"Reset all tasks?",
		"Every task is deleted and ids start again from 1.",
	)
}

func confirmDialog(title, body string) string {
	return modalStyle(theme.Delete).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Bold(true).Render(title),
		"",
		body,
		"",
		keyStyle().Render("y")+" confirm   "+keyStyle().Render("n")+" cancel",
	))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle().Render("Keyboard shortcuts"))
	b.WriteString("\n")

	for _, section := range m.Keys.HelpSections(m.AppState.DevMode()) {
		b.WriteString("\n" + subtleStyle().Render(section.Title) + "\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle().Width(14).Render(h.Key), h.Desc))
		}
	}

	return modalStyle(theme.Accent).Render(strings.TrimRight(b.String(), "\n"))
}
