package state

import (
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/models"
)

func TestUIState_SetModeRemembersReturnMode(t *testing.T) {
	s := NewUIState()
	if s.Mode() != HomeMode {
		t.Fatalf("initial mode = %v, want home", s.Mode())
	}

	s.SetMode(ListMode)
	s.SetMode(HelpMode)
	if s.ReturnMode() != ListMode {
		t.Errorf("ReturnMode = %v, want list", s.ReturnMode())
	}

	// Re-entering the same mode keeps the return target
	s.SetMode(HelpMode)
	if s.ReturnMode() != ListMode {
		t.Errorf("ReturnMode after re-entering help = %v, want list", s.ReturnMode())
	}
}

func TestUIState_Selection(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		count int
		want  int
	}{
		{"down", 0, 1, 3, 1},
		{"down at bottom", 2, 1, 3, 2},
		{"up at top", 0, -1, 3, 0},
		{"empty list", 0, 1, 0, 0},
		{"list shrank", 5, 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelectedTask(tt.start)
			s.MoveSelection(tt.delta, tt.count)
			if s.SelectedTask() != tt.want {
				t.Errorf("SelectedTask = %d, want %d", s.SelectedTask(), tt.want)
			}
		})
	}
}

func TestUIState_EnsureVisible(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(7)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 3 {
		t.Errorf("ScrollOffset = %d, want 3", s.ScrollOffset())
	}

	s.SetSelectedTask(1)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 1 {
		t.Errorf("ScrollOffset = %d, want 1", s.ScrollOffset())
	}
}

func TestAppState_SetTasks(t *testing.T) {
	s := NewAppState(false)
	s.SetTasks([]*models.Task{
		{ID: 2, Completed: true},
		{ID: 1},
	})

	if got := s.Counts(); got.Total != 2 || got.Completed != 1 {
		t.Errorf("Counts = %+v", got)
	}
	if s.TaskAt(1).ID != 1 || s.TaskAt(2) != nil || s.TaskAt(-1) != nil {
		t.Error("TaskAt bounds")
	}

	s.SetTasks(nil)
	if s.Tasks() == nil || len(s.Tasks()) != 0 {
		t.Error("SetTasks(nil) should store an empty list")
	}
}

func TestFormState_Reset(t *testing.T) {
	s := NewFormState()
	if s.FormPriority != "medium" || !s.FormConfirm {
		t.Errorf("defaults = %+v", s)
	}

	s.FormTitle = "x"
	if !s.HasChanges() {
		t.Error("HasChanges should be true")
	}
	s.Reset()
	if s.HasChanges() {
		t.Error("Reset should clear fields")
	}
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelError, "boom")
	s.Add(LevelInfo, "ok")

	if !s.HasAny() || len(s.All()) != 2 {
		t.Fatalf("All = %+v", s.All())
	}

	// No window size yet: nothing to position
	if layers := s.GetLayers(func(n Notification) string { return n.Message }); len(layers) != 0 {
		t.Errorf("expected no layers before sizing, got %d", len(layers))
	}

	s.SetWindowSize(80, 24)
	if layers := s.GetLayers(func(n Notification) string { return n.Message }); len(layers) != 2 {
		t.Errorf("expected 2 layers, got %d", len(layers))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("Clear should remove notifications")
	}
}
