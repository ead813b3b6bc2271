package config

// Preferences is the only state arbiter persists between runs
type Preferences struct {
	// DarkMode is nil until the user picks a theme
	DarkMode *bool `json:"darkMode,omitempty"`
}

// Theme selects a colour palette
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ThemeFor maps the dark-mode flag to a theme
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// DefaultPreferences returns preferences with nothing chosen yet
func DefaultPreferences() *Preferences {
	return &Preferences{}
}
