// Package color provides the terminal styles rigctl uses for CLI output.
//
// Colors are organized into semantic styles (success, warning, error, muted)
// built on lipgloss adaptive colors, so output stays readable on both dark
// and light backgrounds. Styling honors the resolved 'color' option: when
// disabled, every helper returns its input unstyled, which also keeps
// captured output stable in tests and scripts.
package color
