// Package ui centralizes terminal color handling: ANSI helpers for the plain
// CLI output and a lipgloss palette for the TUI dashboard. Honors the
// NO_COLOR convention and the --no-color flag.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var colorsEnabled = true

// InitTheme configures color output. Colors are disabled when noColor is set
// or the NO_COLOR environment variable is present.
func InitTheme(noColor bool) {
	colorsEnabled = !noColor && os.Getenv("NO_COLOR") == ""
}

// ColorsEnabled reports whether ANSI colors are currently emitted.
func ColorsEnabled() bool { return colorsEnabled }

func ansi(code string) string {
	if !colorsEnabled {
		return ""
	}
	return code
}

// ColorReset returns the ANSI reset sequence, or "" when colors are disabled.
func ColorReset() string { return ansi("\033[0m") }

// ColorRed returns the ANSI red sequence, or "" when colors are disabled.
func ColorRed() string { return ansi("\033[31m") }

// ColorGreen returns the ANSI green sequence, or "" when colors are disabled.
func ColorGreen() string { return ansi("\033[32m") }

// ColorYellow returns the ANSI yellow sequence, or "" when colors are disabled.
func ColorYellow() string { return ansi("\033[33m") }

// ColorMagenta returns the ANSI magenta sequence, or "" when colors are disabled.
func ColorMagenta() string { return ansi("\033[35m") }

// ColorCyan returns the ANSI cyan sequence, or "" when colors are disabled.
func ColorCyan() string { return ansi("\033[36m") }

// ColorUnderline returns the ANSI underline sequence, or "" when colors are disabled.
func ColorUnderline() string { return ansi("\033[4m") }

// TUITheme holds the lipgloss palette shared by all TUI panels.
type TUITheme struct {
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// GetTUITheme returns the dashboard palette.
func GetTUITheme() TUITheme {
	return TUITheme{
		Border:  lipgloss.Color("63"),
		Accent:  lipgloss.Color("205"),
		Text:    lipgloss.Color("252"),
		Subtle:  lipgloss.Color("241"),
		Success: lipgloss.Color("42"),
		Error:   lipgloss.Color("196"),
	}
}
