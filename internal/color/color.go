package color

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"}).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "240"})
)

var enabled = true

// Initialize sets the background assumption for adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// SetEnabled toggles styling. When disabled every helper returns its input
// unchanged; the run command wires this to the resolved 'color' option.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether styling is active.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text as a positive state.
func Success(text string) string { return render(successStyle, text) }

// Warn styles text as a caution state.
func Warn(text string) string { return render(warnStyle, text) }

// Error styles text as a failure state.
func Error(text string) string { return render(errorStyle, text) }

// Muted styles text as de-emphasized detail.
func Muted(text string) string { return render(mutedStyle, text) }
