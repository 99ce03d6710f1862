package theme

import "github.com/charmbracelet/lipgloss"

// Deep-sea palette for the diary UI.
var (
	BG            = lipgloss.Color("#0B1A24")
	Panel         = lipgloss.Color("#12283A")
	Border        = lipgloss.Color("#2C5A73")
	TextPrimary   = lipgloss.Color("#E4EEF2")
	TextSecondary = lipgloss.Color("#9FB7C4")
	TextMuted     = lipgloss.Color("#64808F")
	AccentTide    = lipgloss.Color("#3FB6C8")
	AccentKelp    = lipgloss.Color("#5FBF77")
	WarningAmber  = lipgloss.Color("#D9A441")
	Danger        = lipgloss.Color("#D0563F")
)
