package models

import "strings"

// Priority is the urgency of a task, stored as text
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns every priority, most urgent first
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// LookupPriority reports whether s names a known priority (case-insensitive)
func LookupPriority(s string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityLow:
		return PriorityLow, true
	}
	return "", false
}

// ParsePriority normalizes s to a priority.
// Empty or unrecognized values fall back to DefaultPriority.
func ParsePriority(s string) Priority {
	if p, ok := LookupPriority(s); ok {
		return p
	}
	return DefaultPriority
}

// Label is the short uppercase badge text
func (p Priority) Label() string {
	return strings.ToUpper(string(p))
}

// Color is the badge color used by the TUI
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return ColorPriorityHigh
	case PriorityLow:
		return ColorPriorityLow
	default:
		return ColorPriorityMedium
	}
}
