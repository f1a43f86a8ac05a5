// Package display holds what the console menu and the TUI browser share:
// the lipgloss theme and the one-line user messages for errors.
package display

import "github.com/charmbracelet/lipgloss"

// Club colours; terminals without colour fall back to bold/faint.
var (
	clubGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	alertRed  = lipgloss.Color("203")
)

// Theme is shared by the browser and the console menu headers.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(clubGreen),
		Subtitle: faint,
		Help:     faint,
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(clubGreen),
		Error: lipgloss.NewStyle().Bold(true).Foreground(alertRed),
	}
}
