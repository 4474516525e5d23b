package ui

import "github.com/charmbracelet/lipgloss"

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" (default) or "light"
}

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme renders styled text. With NoColor set every method returns its
// input unchanged.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors
}

var (
	darkColors = Colors{
		Primary:   "#7D56F4",
		Secondary: "#3DD6D0",
		Success:   "#04B575",
		Error:     "#FF5F87",
		Muted:     "#767676",
	}
	lightColors = Colors{
		Primary:   "#5A3FC0",
		Secondary: "#1A8F8A",
		Success:   "#02804F",
		Error:     "#D7263D",
		Muted:     "#8A8A8A",
	}
)

// NewTheme creates a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor, Mode: cfg.Mode, Colors: darkColors}
	if cfg.Mode == "light" {
		t.Colors = lightColors
	} else {
		t.Mode = "dark"
	}
	return t
}

// Success renders s as a success message.
func (t *Theme) Success(s string) string {
	return t.render(s, t.Colors.Success, true)
}

// Error renders s as an error message.
func (t *Theme) Error(s string) string {
	return t.render(s, t.Colors.Error, true)
}

// Muted renders s as secondary information.
func (t *Theme) Muted(s string) string {
	return t.render(s, t.Colors.Muted, false)
}

// Heading renders s as a section heading.
func (t *Theme) Heading(s string) string {
	return t.render(s, t.Colors.Primary, true)
}

func (t *Theme) render(s, color string, bold bool) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(bold).Render(s)
}
