package huhforms

import (
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/config"
)

func TestPriorityOptions(t *testing.T) {
	opts := PriorityOptions()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}

	want := []string{"high", "medium", "low"}
	for i, opt := range opts {
		if opt.Value != want[i] {
			t.Errorf("option %d value = %q, want %q", i, opt.Value, want[i])
		}
	}
}

func TestCreateTaskForm(t *testing.T) {
	title, desc, priority, confirm := "", "", "medium", true

	form := CreateTaskForm(TaskFormValues{
		Title:       &title,
		Description: &desc,
		Priority:    &priority,
		Confirm:     &confirm,
	}, 0)

	if form == nil {
		t.Fatal("expected a form")
	}
	if view := form.View(); view == "" {
		t.Error("expected the form to render")
	}
}

func TestCreateTaskmasterTheme(t *testing.T) {
	theme := CreateTaskmasterTheme(config.DefaultColorScheme())
	if theme == nil {
		t.Fatal("expected a theme")
	}
}
