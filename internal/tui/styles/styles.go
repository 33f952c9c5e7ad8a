// Package styles holds the Lip Gloss styles of the workout TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Every color adapts to light and dark terminals.
var (
	Highlight    = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	Subtle       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	onAccent           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#042F2E"}
	selectedBackground = lipgloss.AdaptiveColor{Light: "#ECFDF5", Dark: "#1E2B2A"}
	barBackground      = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1F2937"}
	barForeground      = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
)

var (
	// Title and SectionHeader must stay margin-free: the day log viewport
	// counts lines.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	SectionHeader = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true).
			Underline(true)

	Muted = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)
)

// Lists: library, routines and plan rows. Both row styles take two columns
// before the text.
var (
	ListItem = lipgloss.NewStyle().
			PaddingLeft(2)

	ListSelected = lipgloss.NewStyle().
			Background(selectedBackground).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderLeftForeground(Highlight).
			PaddingLeft(1)

	ListDetail = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(Subtle)

	ActiveBadge = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)

// Day log below the week strip.
var (
	SessionHeader = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	SetLine = lipgloss.NewStyle().
		PaddingLeft(4)

	Volume = lipgloss.NewStyle().
		Foreground(SuccessColor)

	PlannedRoutine = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Status bar. Every part repeats the bar background so it does not break
// behind styled runs.
var (
	StatusBar = lipgloss.NewStyle().
			Background(barBackground).
			Foreground(barForeground).
			Padding(0, 1)

	StatusBarKey = lipgloss.NewStyle().
			Background(barBackground).
			Foreground(Highlight).
			Bold(true)

	StatusBarText = lipgloss.NewStyle().
			Background(barBackground).
			Foreground(Subtle)

	StatusBarError = lipgloss.NewStyle().
			Background(barBackground).
			Foreground(ErrorColor).
			Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
				Background(barBackground).
				Foreground(SuccessColor).
				Bold(true)
)

// Command line at the bottom of the screen.
var (
	CommandPrompt = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	CommandInput = lipgloss.NewStyle().
			Foreground(barForeground)

	CommandSuggestion = lipgloss.NewStyle().
				Foreground(Subtle)

	CommandSuggestionSelected = lipgloss.NewStyle().
					Background(Highlight).
					Foreground(onAccent)

	CommandLineContainer = lipgloss.NewStyle().
				Padding(0, 1)
)

// Help overlay, forms and dialogs.
var (
	HelpKey = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	InputLabel = lipgloss.NewStyle().
			Bold(true)

	InputLabelFocused = lipgloss.NewStyle().
				Foreground(Highlight).
				Bold(true)

	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)

// Tab bar. TabBar takes two rows: the labels and a bottom border.
var (
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		Padding(0, 1)

	Tab = lipgloss.NewStyle().
		Foreground(Subtle).
		Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Background(Highlight).
			Foreground(onAccent).
			Bold(true).
			Padding(0, 2)
)

// Rest timer.
var (
	TimerClock = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	TimerDone = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)
