package theme

import "github.com/thenoetrevino/taskmaster/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	Background string
	Create     string
	Delete     string
	RowBorder  string
	SelectedBg string
	Completed  string
	Title      string
	Subtle     string
	Normal     string
	InfoFg     string
	InfoBg     string
	WarningFg  string
	WarningBg  string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Create = colors.Create
	Delete = colors.Delete
	RowBorder = colors.RowBorder
	SelectedBg = colors.SelectedBg
	Completed = colors.Completed
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
