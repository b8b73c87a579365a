package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// Glamour renderers are expensive to build, so they are cached per width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a task description as markdown.
// Falls back to the raw text if glamour fails.
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return subtleStyle().Italic(true).Render("No description")
	}

	renderer, err := getRenderer(max(props.Width, minRowWidth))
	if err != nil {
		return props.Description
	}

	rendered, err := renderer.Render(props.Description)
	if err != nil {
		return props.Description
	}
	return strings.TrimSpace(rendered)
}

// TruncateLines keeps at most n lines of s, marking the cut with an ellipsis
func TruncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "…"
}

// PlainWidth truncates a single line to width cells
func PlainWidth(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
