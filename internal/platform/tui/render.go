package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pashakim/pasha-party/internal/core"
)

// Shared styles for the session views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hardModeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
)

// RenderScreen converts a Screen buffer to a string for display.
func RenderScreen(s *core.Screen) string {
	return s.String()
}

// centerLine centers text within the given width.
func centerLine(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
