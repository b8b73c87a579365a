package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

// descriptionCharLimit bounds the textarea; the store itself has no limit
const descriptionCharLimit = 5000

// TaskFormValues are the pointers the form writes into
type TaskFormValues struct {
	Title       *string
	Description *string
	Priority    *string
	Confirm     *bool
}

// PriorityOptions lists the priority select options, most urgent first
func PriorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, 3)
	for _, p := range models.Priorities() {
		opts = append(opts, huh.NewOption(p.Label(), string(p)))
	}
	return opts
}

// CreateTaskForm creates the add-task form.
// The title is not validated here: an empty title is reported by the caller
// as a warning notification once the form completes.
func CreateTaskForm(values TaskFormValues, descriptionLines int) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What needs doing?").
			CharLimit(models.MaxTitleLength).
			Value(values.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Optional details (markdown)...").
			CharLimit(descriptionCharLimit).
			Lines(max(descriptionLines, 1)).
			Value(values.Description),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(values.Priority),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this task?").
			Affirmative("Yes").
			Negative("No").
			Value(values.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
