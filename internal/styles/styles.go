// Package styles defines the lipgloss styles for status output on stderr.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorScheme defines the color palette for status lines
type ColorScheme struct {
	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Text colors
	Muted lipgloss.Color
}

// Styles contains all the lipgloss styles for the application
type Styles struct {
	// Color scheme
	Colors ColorScheme

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultColors returns the default color scheme
func DefaultColors() ColorScheme {
	return ColorScheme{
		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("214"),
		Error:   lipgloss.Color("196"),
		Info:    lipgloss.Color("39"),
		Muted:   lipgloss.Color("241"),
	}
}

// DefaultStyles builds the styles for the default color scheme
func DefaultStyles() Styles {
	colors := DefaultColors()

	return Styles{
		Colors:  colors,
		Success: lipgloss.NewStyle().Foreground(colors.Success),
		Warning: lipgloss.NewStyle().Foreground(colors.Warning),
		Error:   lipgloss.NewStyle().Foreground(colors.Error).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Info),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colors.Muted),
	}
}

// ColorEnabled reports whether colored status output should be used.
// NO_COLOR always wins; otherwise the terminal profile decides.
func ColorEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
