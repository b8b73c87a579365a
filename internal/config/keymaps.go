package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`
	ViewTask   string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`
	OpenList string `yaml:"open_list"`
	Back     string `yaml:"back"`
	Refresh  string `yaml:"refresh"`

	// Development
	ResetTasks string `yaml:"reset_tasks"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		DeleteTask: "d",
		ToggleTask: "space",
		ViewTask:   "v",
		SaveForm:   "ctrl+s",

		PrevTask: "k",
		NextTask: "j",
		OpenList: "l",
		Back:     "esc",
		Refresh:  "r",

		ResetTasks: "R",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleTask, defaults.ToggleTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.OpenList, defaults.OpenList)
	fill(&k.Back, defaults.Back)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ResetTasks, defaults.ResetTasks)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
