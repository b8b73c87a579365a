package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Left replaces the default title, e.g. with an inline notification
	Left string
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := subtleStyle()

	left := props.Left
	if left == "" {
		left = style.Render("Taskmaster")
	}
	hint := props.Hint
	if hint == "" {
		hint = "press ? for help"
	}
	right := style.Render(hint)

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
