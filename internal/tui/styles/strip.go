package styles

import "github.com/charmbracelet/lipgloss"

// Week strip styles. Cells never get padding: the strip cuts them by column.
var (
	StripHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Align(lipgloss.Center)

	StripNav = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	StripDay = lipgloss.NewStyle()

	StripDayToday = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	StripDayPlanned = lipgloss.NewStyle().
			Foreground(WarningColor)

	StripDaySession = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	StripDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(onAccent)
)
