package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/components"
)

// viewDetail renders one task with its description as markdown
func (m Model) viewDetail() string {
	task := m.selectedTask()
	if task == nil {
		return m.viewList()
	}

	width := m.UIState.Width()
	status := "active"
	if task.Completed {
		status = "completed"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Checkbox(task.Completed), " ",
		titleStyle().Render(task.Title), "  ",
		components.PriorityBadge(task.Priority),
	)
	meta := subtleStyle().Render(fmt.Sprintf("#%d · %s · created %s",
		task.ID, status, components.CreatedLabel(task.CreatedAt, m.now())))

	desc := components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       max(width-4, 20),
	})

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, meta, "", desc))
}
