package styles

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/taskmaster/internal/config"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

var (
	// Text styles
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	CompletedStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	CompletedStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Completed))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// PriorityBadge renders "[HIGH]" in the priority's color
func PriorityBadge(p models.Priority) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Color())).
		Render("[" + p.Label() + "]")
}

// RenderTaskLine renders one task for `task list`.
// Format: "  [x] #12 Title [HIGH] · 3 minutes ago"
func RenderTaskLine(task *models.Task, now time.Time) string {
	check := "[ ]"
	title := task.Title
	if task.Completed {
		check = "[x]"
		title = CompletedStyle.Render(title)
	}

	return fmt.Sprintf("  %s #%d %s %s %s",
		check,
		task.ID,
		title,
		PriorityBadge(task.Priority),
		SubtitleStyle.Render("· "+RelativeTime(task.CreatedAt, now)),
	)
}

// RelativeTime renders t relative to now ("3 minutes ago")
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
