package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/components"
)

// estimated rendered height of one row, used for scrolling
const rowHeightEstimate = 5

// listHeight is the number of lines below the header available for rows
func (m Model) listHeight() int {
	return max(m.UIState.Height()-3, rowHeightEstimate)
}

// visibleRows estimates how many rows fit, for keeping the selection on screen
func (m Model) visibleRows() int {
	return m.listHeight() / rowHeightEstimate
}

// viewList renders the header, then as many rows as fit on screen
func (m Model) viewList() string {
	width := m.UIState.Width()
	header := components.RenderHeader(components.HeaderProps{
		Counts: m.AppState.Counts(),
		Width:  width,
	})

	tasks := m.AppState.Tasks()
	if len(tasks) == 0 {
		empty := components.RenderEmptyState(m.Config.KeyMappings.AddTask)
		body := lipgloss.Place(width, max(m.UIState.Height()-3, 1), lipgloss.Center, lipgloss.Center, empty)
		return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	}

	available := m.listHeight()

	now := m.now()
	var rows []string
	used := 0
	for i := m.UIState.ScrollOffset(); i < len(tasks); i++ {
		row := components.RenderTaskRow(components.TaskRowProps{
			Task:     tasks[i],
			Selected: i == m.UIState.SelectedTask(),
			Width:    width,
			Now:      now,
		})
		h := lipgloss.Height(row)
		if used+h > available && len(rows) > 0 {
			break
		}
		rows = append(rows, row)
		used += h
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(rows, "\n"))
}
