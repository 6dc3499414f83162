package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for headers and status text.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:    "ember",
		Primary: lipgloss.Color("#ff6b00"),
		Accent:  lipgloss.Color("#ffd000"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#776655"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeEmber

	Themes = []Theme{
		ThemeEmber,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
