package colors

// Honey returns the default color scheme (amber theme)
func Honey() *ColorScheme {
	return &ColorScheme{
		Preset: "honey",

		// Primary
		Accent: "#FFAF00",

		// Text
		Title:  "#FFD75F",
		Subtle: "#8A8A8A",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
