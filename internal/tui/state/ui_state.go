package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	HomeMode          Mode = iota // Landing screen
	ListMode                      // Task list
	AddTaskMode                   // Add-task form with huh
	DetailMode                    // Read-only view of one task
	DeleteConfirmMode             // Confirming task deletion
	ResetConfirmMode              // Confirming a dev-mode reset
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case HomeMode:
		return "home"
	case ListMode:
		return "list"
	case AddTaskMode:
		return "add"
	case DetailMode:
		return "detail"
	case DeleteConfirmMode:
		return "delete-confirm"
	case ResetConfirmMode:
		return "reset-confirm"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes list selection, terminal dimensions, and the current mode.
type UIState struct {
	// selectedTask is the index of the highlighted row in the list
	selectedTask int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	width  int
	height int

	mode Mode

	// returnMode is where HelpMode and dialogs go back to
	returnMode Mode
}

// NewUIState creates a new UIState starting on the home screen.
func NewUIState() *UIState {
	return &UIState{
		mode:       HomeMode,
		returnMode: HomeMode,
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches modes, remembering the previous one for ReturnMode.
func (s *UIState) SetMode(mode Mode) {
	if mode != s.mode {
		s.returnMode = s.mode
	}
	s.mode = mode
}

// ReturnMode is the mode that was active before the current one.
func (s *UIState) ReturnMode() Mode {
	return s.returnMode
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// SelectedTask returns the index of the highlighted row.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the highlighted row without bounds checks.
func (s *UIState) SetSelectedTask(idx int) {
	s.selectedTask = idx
}

// MoveSelection moves the highlight by delta, staying within [0, count).
func (s *UIState) MoveSelection(delta, count int) {
	s.selectedTask += delta
	s.ClampSelection(count)
}

// ClampSelection keeps the highlight within [0, count) after the list changes.
func (s *UIState) ClampSelection(count int) {
	if s.selectedTask >= count {
		s.selectedTask = count - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureVisible scrolls so the selected row is within a window of visible rows.
func (s *UIState) EnsureVisible(visible int) {
	if visible <= 0 {
		s.scrollOffset = 0
		return
	}
	if s.selectedTask < s.scrollOffset {
		s.scrollOffset = s.selectedTask
	}
	if s.selectedTask >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedTask - visible + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}
