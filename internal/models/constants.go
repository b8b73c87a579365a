package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// DefaultPriority is used when a priority is omitted or unrecognized
const DefaultPriority = PriorityMedium

// Badge colors per priority
const (
	ColorPriorityHigh   = "#FF6B6B"
	ColorPriorityMedium = "#FFA726"
	ColorPriorityLow    = "#66BB6A"
)

// ============================================================================
// TASK CONSTANTS
// ============================================================================

// MaxTitleLength is the longest title the service layer accepts
const MaxTitleLength = 255
