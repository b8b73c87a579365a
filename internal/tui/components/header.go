package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/models"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

type HeaderProps struct {
	Counts models.TaskCounts
	Width  int
}

// RenderHeader renders the list title with its total and completed counts
func RenderHeader(props HeaderProps) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Render("Tasks")

	summary := subtleStyle().Render(fmt.Sprintf("%d total · %d completed", props.Counts.Total, props.Counts.Completed))

	return lipgloss.NewStyle().
		Width(max(props.Width, minRowWidth)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", summary))
}

// RenderEmptyState renders the hint shown when there are no tasks
func RenderEmptyState(addKey string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		subtleStyle().Italic(true).Render("No tasks yet."),
		subtleStyle().Render("Press ")+accentStyle().Render(addKey)+subtleStyle().Render(" to add your first task."),
	)
}
