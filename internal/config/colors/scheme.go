package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "lotus")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // add-task form
	Delete string `yaml:"delete"` // delete and reset confirmations

	// Task rows
	RowBorder  string `yaml:"row_border"`
	SelectedBg string `yaml:"selected_bg"`
	Completed  string `yaml:"completed"` // struck-through titles

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the preset names GetPreset understands
func Presets() []string {
	return []string{"default", "monochrome", "lotus"}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.Create, preset.Create)
	fill(&c.Delete, preset.Delete)
	fill(&c.RowBorder, preset.RowBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Completed, preset.Completed)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overlays every non-empty value of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.Create, other.Create)
	merge(&c.Delete, other.Delete)
	merge(&c.RowBorder, other.RowBorder)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Completed, other.Completed)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
