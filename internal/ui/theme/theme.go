// Package theme holds the lipgloss styles shared by the terminal UI.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(AccentTide)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Body  = lipgloss.NewStyle().Foreground(TextPrimary)
	Label = lipgloss.NewStyle().Foreground(TextSecondary)

	Good    = lipgloss.NewStyle().Foreground(AccentKelp)
	Warning = lipgloss.NewStyle().Foreground(WarningAmber)
	Bad     = lipgloss.NewStyle().Foreground(Danger)

	Selected = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Background(Border)
	Disabled = lipgloss.NewStyle().Foreground(TextMuted).Strikethrough(true)

	Section = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(Panel).
		Padding(0, 1)
)

// StatStyle colours a bounded stat reading. For toxicity high is bad, for
// everything else low is bad.
func StatStyle(value float64, highIsBad bool) lipgloss.Style {
	if highIsBad {
		value = 100 - value
	}
	switch {
	case value >= 60:
		return Good
	case value >= 30:
		return Warning
	default:
		return Bad
	}
}
