package colors

// ColorScheme defines the colors of human-readable CLI output
type ColorScheme struct {
	// Preset name (e.g., "honey", "monochrome")
	Preset string `yaml:"preset" mapstructure:"preset"`

	// Primary accent color (used for field labels, borders, section headers)
	Accent string `yaml:"accent" mapstructure:"accent"`

	// Text colors
	Title  string `yaml:"title" mapstructure:"title"`
	Subtle string `yaml:"subtle" mapstructure:"subtle"` // Muted text like ids and timestamps
	Normal string `yaml:"normal" mapstructure:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg" mapstructure:"info_fg"`
	InfoBg    string `yaml:"info_bg" mapstructure:"info_bg"`
	WarningFg string `yaml:"warning_fg" mapstructure:"warning_fg"`
	WarningBg string `yaml:"warning_bg" mapstructure:"warning_bg"`
	ErrorFg   string `yaml:"error_fg" mapstructure:"error_fg"`
	ErrorBg   string `yaml:"error_bg" mapstructure:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Honey()
	}
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
