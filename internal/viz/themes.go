package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeStarship = Theme{
		Name:       "starship",
		Primary:    lipgloss.Color("#00f3ff"), // Neon cyan
		Secondary:  lipgloss.Color("#ff00ff"),
		Accent:     lipgloss.Color("#ffcc00"),
		Background: lipgloss.Color("#0f172a"), // Slate night
		Panel:      lipgloss.Color("#334155"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#64748b"),
		Success:    lipgloss.Color("#00ff9d"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ef4444"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Panel:      lipgloss.Color("#005500"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Panel:      lipgloss.Color("#444444"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeNebula = Theme{
		Name:       "nebula",
		Primary:    lipgloss.Color("#a855f7"), // Violet
		Secondary:  lipgloss.Color("#ff9ff3"),
		Accent:     lipgloss.Color("#feca57"),
		Background: lipgloss.Color("#1e1b4b"),
		Panel:      lipgloss.Color("#4c1d95"),
		Text:       lipgloss.Color("#f5f3ff"),
		Muted:      lipgloss.Color("#8b7fb8"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	// Default theme
	CurrentTheme = ThemeStarship

	// All available themes
	Themes = []Theme{
		ThemeStarship,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeNebula,
	}
)

// GetTheme returns a theme by name; unknown names fall back to starship.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeStarship
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
