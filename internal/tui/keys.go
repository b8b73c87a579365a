package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/taskmaster/internal/config"
)

// KeyMap holds the TUI bindings built from the configured key mappings
type KeyMap struct {
	Add      key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	View     key.Binding
	Save     key.Binding
	Up       key.Binding
	Down     key.Binding
	OpenList key.Binding
	Back     key.Binding
	Refresh  key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// NewKeyMap builds bindings from key mappings. Arrow keys, enter and ctrl+c
// are always bound alongside the configured keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add:      key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "new task")),
		Delete:   key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		Toggle:   key.NewBinding(key.WithKeys(km.ToggleTask, "enter"), key.WithHelp(km.ToggleTask+"/enter", "toggle done")),
		View:     key.NewBinding(key.WithKeys(km.ViewTask), key.WithHelp(km.ViewTask, "view details")),
		Save:     key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save task")),
		Up:       key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "previous task")),
		Down:     key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),
		OpenList: key.NewBinding(key.WithKeys(km.OpenList), key.WithHelp(km.OpenList, "view tasks")),
		Back:     key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back")),
		Refresh:  key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Reset:    key.NewBinding(key.WithKeys(km.ResetTasks), key.WithHelp(km.ResetTasks, "reset all tasks (dev)")),
		Help:     key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
		Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("n", "N", km.Back), key.WithHelp("n", "cancel")),
	}
}

// HelpSections groups bindings for the help screen
func (k KeyMap) HelpSections(devMode bool) []HelpSection {
	general := []key.Binding{k.OpenList, k.Add, k.Help, k.Quit}
	if devMode {
		general = append(general, k.Reset)
	}

	return []HelpSection{
		{Title: "General", Bindings: general},
		{Title: "Task list", Bindings: []key.Binding{k.Up, k.Down, k.Toggle, k.View, k.Delete, k.Refresh, k.Back}},
		{Title: "New task form", Bindings: []key.Binding{k.Save, k.Back}},
	}
}

// HelpSection is a titled group of bindings
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}
