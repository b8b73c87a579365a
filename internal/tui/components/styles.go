package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

// Row layout constants
const (
	rowHorizontalPadding = 1
	descriptionMaxLines  = 2
	minRowWidth          = 24
)

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
}
