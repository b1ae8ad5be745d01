// Package theme defines color themes for the vitadash TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (selected day, active tab)
	Border       lipgloss.Color // Subtle borders
	BorderBright lipgloss.Color // Prominent borders (cards, focus)
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, goal lines)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Sage accent (highlights, selected day)
	AccentDim    lipgloss.Color // Dimmed accent for backgrounds
	Protein      lipgloss.Color // Protein share in macro bars
	Carbs        lipgloss.Color // Carb share in macro bars
	Fat          lipgloss.Color // Fat share in macro bars
	Red          lipgloss.Color
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = Dark

// Dark is the default theme.
var Dark = Theme{
	Name:         "dark",
	Background:   lipgloss.Color("#1C1C1C"),
	Surface:      lipgloss.Color("#262626"),
	SurfaceHover: lipgloss.Color("#333333"),
	Border:       lipgloss.Color("#3A3A3A"),
	BorderBright: lipgloss.Color("#525252"),
	TextDim:      lipgloss.Color("#525252"),
	TextMuted:    lipgloss.Color("#8A8A8A"),
	TextPrimary:  lipgloss.Color("#F5F5F0"),
	Accent:       lipgloss.Color("#9DC183"),
	AccentDim:    lipgloss.Color("#2C3526"),
	Protein:      lipgloss.Color("#9DC183"),
	Carbs:        lipgloss.Color("#D0A215"),
	Fat:          lipgloss.Color("#CE5D97"),
	Red:          lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// Light is a paper-white theme for bright terminals.
var Light = Theme{
	Name:         "light",
	Background:   lipgloss.Color("#F7F7F2"),
	Surface:      lipgloss.Color("#ECECE6"),
	SurfaceHover: lipgloss.Color("#E0E0DA"),
	Border:       lipgloss.Color("#D4D4CE"),
	BorderBright: lipgloss.Color("#B5B5AF"),
	TextDim:      lipgloss.Color("#B5B5AF"),
	TextMuted:    lipgloss.Color("#6F6F6A"),
	TextPrimary:  lipgloss.Color("#1C1C1C"),
	Accent:       lipgloss.Color("#6B9A4B"),
	AccentDim:    lipgloss.Color("#E2EDD8"),
	Protein:      lipgloss.Color("#6B9A4B"),
	Carbs:        lipgloss.Color("#A87E0D"),
	Fat:          lipgloss.Color("#B0437D"),
	Red:          lipgloss.Color("#C03028"),
	Blue:         lipgloss.Color("#2E6BA0"),
	Yellow:       lipgloss.Color("#A87E0D"),
}

// All available themes.
var All = []Theme{Dark, Light}

// ByName returns a theme by its name, defaulting to Dark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Dark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Toggle switches the active theme between dark and light and
// returns the name of the newly active theme.
func Toggle() string {
	if Active.Name == Dark.Name {
		Active = Light
	} else {
		Active = Dark
	}
	return Active.Name
}
