// Package ui provides theme management for the dashboard.
// Themes define the palette used by every panel; the names match the ones
// accepted in the config file.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/clinicadigital/omnidesk/internal/config"
)

// Theme defines a complete color palette for the dashboard.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, header gradient, selection)
	Primary string
	// Secondary is used for key hints and attendant messages
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected row background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Message bubbles
	Patient   string // Patient sender labels
	Attendant string // Attendant sender labels

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Priority badges
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused panel borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeClinic  ThemeName = config.ThemeClinic
	ThemeNord    ThemeName = config.ThemeNord
	ThemeDracula ThemeName = config.ThemeDracula
	ThemeLight   ThemeName = config.ThemeLight
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeClinic

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeClinic: {
		Name:           "Clínica",
		Primary:        "#2563EB",
		Secondary:      "#14B8A6",
		Bg:             "#0F172A",
		BgSelected:     "#1E3A8A",
		Text:           "#F8FAFC",
		TextMuted:      "#94A3B8",
		TextInverse:    "#0F172A",
		Patient:        "#38BDF8",
		Attendant:      "#2DD4BF",
		Warning:        "#F59E0B",
		Error:          "#EF4444",
		Info:           "#3B82F6",
		Success:        "#22C55E",
		PriorityHigh:   "#EF4444",
		PriorityMedium: "#F59E0B",
		PriorityLow:    "#22C55E",
		Border:         "#334155",
	},
	ThemeNord: {
		Name:           "Nord",
		Primary:        "#88C0D0",
		Secondary:      "#81A1C1",
		Bg:             "#2E3440",
		Text:           "#ECEFF4",
		TextMuted:      "#D8DEE9",
		TextInverse:    "#2E3440",
		Patient:        "#8FBCBB",
		Attendant:      "#A3BE8C",
		Warning:        "#EBCB8B",
		Error:          "#BF616A",
		Info:           "#81A1C1",
		Success:        "#A3BE8C",
		PriorityHigh:   "#BF616A",
		PriorityMedium: "#EBCB8B",
		PriorityLow:    "#A3BE8C",
		Border:         "#4C566A",
	},
	ThemeDracula: {
		Name:           "Dracula",
		Primary:        "#BD93F9",
		Secondary:      "#8BE9FD",
		Bg:             "#282A36",
		Text:           "#F8F8F2",
		TextMuted:      "#6272A4",
		TextInverse:    "#282A36",
		Patient:        "#FF79C6",
		Attendant:      "#8BE9FD",
		Warning:        "#FFB86C",
		Error:          "#FF5555",
		Info:           "#8BE9FD",
		Success:        "#50FA7B",
		PriorityHigh:   "#FF5555",
		PriorityMedium: "#FFB86C",
		PriorityLow:    "#50FA7B",
		Border:         "#44475A",
	},
	ThemeLight: {
		Name:           "Light",
		Primary:        "#2563EB",
		Secondary:      "#0D9488",
		Bg:             "#FFFFFF",
		BgSelected:     "#DBEAFE",
		Text:           "#0F172A",
		TextMuted:      "#64748B",
		TextInverse:    "#FFFFFF",
		Patient:        "#0369A1",
		Attendant:      "#0F766E",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Info:           "#2563EB",
		Success:        "#16A34A",
		PriorityHigh:   "#DC2626",
		PriorityMedium: "#D97706",
		PriorityLow:    "#16A34A",
		Border:         "#CBD5E1",
		BorderFocus:    "#1D4ED8",
	},
}

// ThemeNames returns all available theme names in display order
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for _, n := range config.KnownThemes() {
		names = append(names, ThemeName(n))
	}
	return names
}

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the active theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown names select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// PriorityColor returns the badge color for a priority label key
func (t Theme) PriorityColor(level string) string {
	switch level {
	case "high":
		return t.PriorityHigh
	case "medium":
		return t.PriorityMedium
	default:
		return t.PriorityLow
	}
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorPatient = lipgloss.Color(t.Patient)
	ColorAttendant = lipgloss.Color(t.Attendant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	buildStyles()
}
