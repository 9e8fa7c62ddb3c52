package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for panels and the tuner.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	TitleTo lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Flight  lipgloss.Color
	Bounce  lipgloss.Color
	Rolling lipgloss.Color
	Stopped lipgloss.Color
}

var (
	ThemeRange = Theme{
		Name:    "range",
		Title:   lipgloss.Color("#00ff88"),
		TitleTo: lipgloss.Color("#00ccff"),
		Accent:  lipgloss.Color("#00ccff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888899"),
		Flight:  lipgloss.Color("#00ff88"),
		Bounce:  lipgloss.Color("#ffcc00"),
		Rolling: lipgloss.Color("#00ccff"),
		Stopped: lipgloss.Color("#ff4444"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Title:   lipgloss.Color("#ff00ff"), // Magenta
		TitleTo: lipgloss.Color("#00ffff"), // Cyan
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Flight:  lipgloss.Color("#ff00ff"),
		Bounce:  lipgloss.Color("#ffff00"),
		Rolling: lipgloss.Color("#00ffff"),
		Stopped: lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		TitleTo: lipgloss.Color("#cccccc"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Flight:  lipgloss.Color("#ffffff"),
		Bounce:  lipgloss.Color("#cccccc"),
		Rolling: lipgloss.Color("#888888"),
		Stopped: lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeRange,
		ThemeCyberpunk,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the range theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRange
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
