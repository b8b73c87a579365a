package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

var features = []string{
	"Create tasks with a priority and a markdown description",
	"Mark tasks done and undo it just as fast",
	"Everything is stored locally in SQLite",
}

// viewHome renders the landing screen
func (m Model) viewHome() string {
	km := m.Config.KeyMappings

	var b strings.Builder
	b.WriteString(titleStyle().Render("Taskmaster"))
	b.WriteString("\n")
	b.WriteString(subtleStyle().Render("A small task manager for your terminal"))
	b.WriteString("\n\n")

	for _, f := range features {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Render("•"))
		b.WriteString(" " + f + "\n")
	}
	b.WriteString("\n")

	actions := [][2]string{
		{km.OpenList, "view tasks"},
		{km.AddTask, "new task"},
	}
	if m.AppState.DevMode() {
		actions = append(actions, [2]string{km.ResetTasks, "reset all tasks"})
	}
	actions = append(actions, [2]string{km.Quit, "quit"})

	for _, a := range actions {
		b.WriteString(keyStyle().Render(a[0]) + "  " + a[1] + "\n")
	}

	if m.AppState.Storage() == state.StorageFailed {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorBg)).
			Render("Storage is unavailable; tasks cannot be loaded or saved."))
	}

	return lipgloss.Place(m.UIState.Width(), m.UIState.Height()-1,
		lipgloss.Center, lipgloss.Center, b.String())
}
