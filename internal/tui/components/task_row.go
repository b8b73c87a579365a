package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/taskmaster/internal/models"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

type TaskRowProps struct {
	Task     *models.Task
	Selected bool
	Width    int
	Now      time.Time
}

// RenderTaskRow renders one list entry
//
//	┌──────────────────────────────────────┐
//	│ [x] Title                     [HIGH] │
//	│     description first lines          │
//	│     created 3 minutes ago            │
//	└──────────────────────────────────────┘
func RenderTaskRow(props TaskRowProps) string {
	task := props.Task
	width := max(props.Width, minRowWidth)
	// border, padding, and one spare cell each side
	inner := width - 4 - 2*rowHorizontalPadding

	bg := theme.Background
	if props.Selected {
		bg = theme.SelectedBg
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))

	badge := PriorityBadge(task.Priority)
	check := Checkbox(task.Completed)

	titleWidth := inner - lipgloss.Width(check) - lipgloss.Width(badge) - 2
	title := PlainWidth(task.Title, titleWidth)
	titleStyle := base.Foreground(lipgloss.Color(theme.Normal)).Bold(true)
	if task.Completed {
		titleStyle = base.Foreground(lipgloss.Color(theme.Completed)).Strikethrough(true)
	}
	title = titleStyle.Render(title)

	gap := max(inner-lipgloss.Width(check)-1-lipgloss.Width(title)-lipgloss.Width(badge), 1)
	firstLine := check + base.Render(" ") + title + base.Render(strings.Repeat(" ", gap)) + badge

	lines := []string{firstLine}

	indent := strings.Repeat(" ", lipgloss.Width(check)+1)
	if desc := strings.TrimSpace(task.Description); desc != "" {
		for _, line := range strings.Split(TruncateLines(desc, descriptionMaxLines), "\n") {
			lines = append(lines, base.Foreground(lipgloss.Color(theme.Normal)).
				Render(indent+PlainWidth(line, inner-len(indent))))
		}
	}

	lines = append(lines, base.Foreground(lipgloss.Color(theme.Subtle)).Italic(true).
		Render(indent+"created "+CreatedLabel(task.CreatedAt, props.Now)))

	borderColor := theme.RowBorder
	if props.Selected {
		borderColor = theme.Accent
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Padding(0, rowHorizontalPadding).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// Checkbox renders the completion marker
func Checkbox(completed bool) string {
	if completed {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Bold(true).Render("[x]")
	}
	return subtleStyle().Render("[ ]")
}

// PriorityBadge renders the priority label on its priority color
func PriorityBadge(p models.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color(p.Color())).
		Bold(true).
		Padding(0, 1).
		Render(p.Label())
}

// CreatedLabel formats a creation time relative to now.
// Times older than a week show the calendar date instead.
func CreatedLabel(created, now time.Time) string {
	if created.IsZero() {
		return "at an unknown time"
	}
	if now.Sub(created) > 7*24*time.Hour {
		return "on " + created.Local().Format("Jan 2, 2006")
	}
	return humanize.RelTime(created, now, "ago", "from now")
}
