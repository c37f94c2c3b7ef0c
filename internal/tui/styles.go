package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	blurredBorder = lipgloss.Color("8")
	focusedBorder = lipgloss.Color("12")
)

// box frames a section; the border lights up when the section has focus.
func box(inner string, focused bool, width int) string {
	c := blurredBorder
	if focused {
		c = focusedBorder
	}
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(inner)
}

// SetNoColor makes every lipgloss style, including the table's, render plain text.
func SetNoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
