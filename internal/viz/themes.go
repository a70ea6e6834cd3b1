package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/step"
)

// Theme maps every role to a colour. Roles are the only styling hint a
// renderer gets, so a theme must cover the array and graph role sets.
type Theme struct {
	Name       string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Roles      map[step.Role]lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "default",
		Text:       lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#6b7280"),
		Accent:     lipgloss.Color("#a78bfa"),
		Background: lipgloss.Color("#111827"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleDefault:    lipgloss.Color("#3b82f6"), // blue bars
			step.RoleComparing:  lipgloss.Color("#facc15"),
			step.RoleSwapped:    lipgloss.Color("#ef4444"),
			step.RoleSorted:     lipgloss.Color("#22c55e"),
			step.RoleExamining:  lipgloss.Color("#facc15"),
			step.RoleFound:      lipgloss.Color("#22c55e"),
			step.RoleEliminated: lipgloss.Color("#4b5563"),
			step.RoleVisited:    lipgloss.Color("#22c55e"),
			step.RoleInMST:      lipgloss.Color("#22c55e"),
			step.RoleCandidate:  lipgloss.Color("#facc15"),
		},
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleDefault:    lipgloss.Color("#00aa00"),
			step.RoleComparing:  lipgloss.Color("#ffff00"),
			step.RoleSwapped:    lipgloss.Color("#ff8800"),
			step.RoleSorted:     lipgloss.Color("#88ff88"),
			step.RoleExamining:  lipgloss.Color("#ffff00"),
			step.RoleFound:      lipgloss.Color("#ccffcc"),
			step.RoleEliminated: lipgloss.Color("#003300"),
			step.RoleVisited:    lipgloss.Color("#88ff88"),
			step.RoleInMST:      lipgloss.Color("#ccffcc"),
			step.RoleCandidate:  lipgloss.Color("#ffff00"),
		},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleDefault:    lipgloss.Color("#cccccc"),
			step.RoleComparing:  lipgloss.Color("#0088ff"),
			step.RoleSwapped:    lipgloss.Color("#ff0000"),
			step.RoleSorted:     lipgloss.Color("#ffffff"),
			step.RoleExamining:  lipgloss.Color("#0088ff"),
			step.RoleFound:      lipgloss.Color("#00ff00"),
			step.RoleEliminated: lipgloss.Color("#444444"),
			step.RoleVisited:    lipgloss.Color("#ffffff"),
			step.RoleInMST:      lipgloss.Color("#00ff00"),
			step.RoleCandidate:  lipgloss.Color("#0088ff"),
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleDefault:    lipgloss.Color("#0077be"),
			step.RoleComparing:  lipgloss.Color("#ffd700"),
			step.RoleSwapped:    lipgloss.Color("#ff4444"),
			step.RoleSorted:     lipgloss.Color("#00ff88"),
			step.RoleExamining:  lipgloss.Color("#ffcc00"),
			step.RoleFound:      lipgloss.Color("#00ff88"),
			step.RoleEliminated: lipgloss.Color("#23415a"),
			step.RoleVisited:    lipgloss.Color("#00ff88"),
			step.RoleInMST:      lipgloss.Color("#00a8cc"),
			step.RoleCandidate:  lipgloss.Color("#ffd700"),
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleDefault:    lipgloss.Color("#feca57"),
			step.RoleComparing:  lipgloss.Color("#ff9ff3"),
			step.RoleSwapped:    lipgloss.Color("#ff4757"),
			step.RoleSorted:     lipgloss.Color("#5fd068"),
			step.RoleExamining:  lipgloss.Color("#ff9ff3"),
			step.RoleFound:      lipgloss.Color("#5fd068"),
			step.RoleEliminated: lipgloss.Color("#5a3f5b"),
			step.RoleVisited:    lipgloss.Color("#5fd068"),
			step.RoleInMST:      lipgloss.Color("#ff6b6b"),
			step.RoleCandidate:  lipgloss.Color("#ffc048"),
		},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

func (t Theme) RoleColor(r step.Role) lipgloss.Color {
	if c, ok := t.Roles[r]; ok {
		return c
	}
	return t.Text
}

func (t Theme) RoleStyle(r step.Role) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.RoleColor(r))
}

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
