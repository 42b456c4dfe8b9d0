package config

// Theme selects the terminal color scheme.
type Theme string

const (
	ThemeAuto  Theme = "auto"  // Detect from the terminal
	ThemeLight Theme = "light" // Sand and sea
	ThemeDark  Theme = "dark"  // Deep water
)

// ValidThemes lists the accepted themes.
var ValidThemes = []Theme{ThemeAuto, ThemeLight, ThemeDark}

// Valid reports whether t is a known theme. Empty means auto.
func (t Theme) Valid() bool {
	if t == "" {
		return true
	}
	for _, v := range ValidThemes {
		if t == v {
			return true
		}
	}
	return false
}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark
	Theme Theme `yaml:"theme"`

	// Markdown renders listings and help through glamour
	Markdown bool `yaml:"markdown"`

	// Width is the maximum width of notices and the menu (0 = terminal width)
	Width int `yaml:"width"`
}
