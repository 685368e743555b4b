package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/runmenu/internal/config"
)

// Theme defines the colour palette
type Theme struct {
	Accent  color.Color // selected menu entry
	Success color.Color // executing line
	Error   color.Color // error and goodbye lines
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

var (
	// DefaultTheme uses the basic ANSI palette, readable on any background
	DefaultTheme = Theme{
		Accent:  lipgloss.Color("6"), // cyan
		Success: lipgloss.Color("2"), // green
		Error:   lipgloss.Color("1"), // red
	}

	// NoneTheme renders without colours; bold is kept
	NoneTheme = Theme{
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}

	NordTheme = Theme{
		Accent:  lipgloss.Color("#88c0d0"), // nord8
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
	}

	NordLightTheme = Theme{
		Accent:  lipgloss.Color("#5e81ac"), // nord10
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
	}
)

var themeFamilies = map[string]themeFamily{
	"default": {Light: &DefaultTheme, Dark: &DefaultTheme},
	"none":    {Light: &NoneTheme, Dark: &NoneTheme},
	"nord":    {Light: &NordLightTheme, Dark: &NordTheme},
}

// Init selects the theme from config and applies it to the package styles.
func Init(cfg config.ThemeConfig) {
	applyTheme(selectTheme(cfg))
}

func selectTheme(cfg config.ThemeConfig) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = themeFamilies["default"]
	}

	// Both variants are the same palette; skip querying the terminal.
	if family.Light == family.Dark {
		return *family.Dark
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	if theme == nil {
		if family.Dark != nil {
			return *family.Dark
		}
		return *family.Light
	}
	return *theme
}

func applyTheme(t Theme) {
	Accent = t.Accent
	Success = t.Success
	Error = t.Error

	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}
