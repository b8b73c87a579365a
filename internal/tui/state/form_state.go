package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

// FormState manages the add-task form and its bound field values.
// huh writes field values through the pointers returned by the accessors.
type FormState struct {
	TaskForm *huh.Form

	FormTitle       string
	FormDescription string
	FormPriority    string
	FormConfirm     bool
}

// NewFormState creates a FormState with default field values.
func NewFormState() *FormState {
	s := &FormState{}
	s.Reset()
	return s
}

// Reset clears the form and restores default field values.
func (s *FormState) Reset() {
	s.TaskForm = nil
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormPriority = string(models.DefaultPriority)
	s.FormConfirm = true
}

// HasChanges reports whether the user typed anything worth keeping.
func (s *FormState) HasChanges() bool {
	return s.FormTitle != "" || s.FormDescription != ""
}
