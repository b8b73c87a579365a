package colors

// Lotus returns a light theme with a cream paper background
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent:     "#624C83",
		Background: "#F2ECBC",

		Create: "#6F894E",
		Delete: "#C84053",

		RowBorder:  "#DCD7BA",
		SelectedBg: "#C7D7E0",
		Completed:  "#8A8980",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		InfoFg:    "#597B75",
		InfoBg:    "#B5CBD2",
		WarningFg: "#E98A00",
		WarningBg: "#F9D791",
		ErrorFg:   "#E82424",
		ErrorBg:   "#D9A594",
	}
}
