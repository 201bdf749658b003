package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/ui"
)

// Style variables for the TUI dashboard, built from the shared ui theme.
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	headerInfoStyle  lipgloss.Style
	workerLabelStyle lipgloss.Style
	summaryKeyStyle  lipgloss.Style
	summaryValStyle  lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
	footerStyle      lipgloss.Style
)

func init() {
	t := ui.GetTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	headerInfoStyle = lipgloss.NewStyle().
		Foreground(t.Subtle)

	workerLabelStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	summaryKeyStyle = lipgloss.NewStyle().
		Foreground(t.Subtle)

	summaryValStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text)

	statusDoneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	statusErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Subtle)
}
