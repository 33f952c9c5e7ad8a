package views

import tea "github.com/charmbracelet/bubbletea"

// ViewHandler defines the contract for a tab's behavior.
// Rendering lives in the ui package; a handler only mutates state and
// returns commands.
type ViewHandler interface {
	// Name returns the view identifier.
	Name() string

	// HandleAction processes a resolved key action for this view.
	// Returns the command to execute and whether the action was consumed.
	HandleAction(action string) (cmd tea.Cmd, consumed bool)

	// HandleSelect processes Enter/selection for this view.
	HandleSelect() tea.Cmd

	// HandleBack processes Escape for this view.
	// Returns the command to execute and whether the view should be exited.
	HandleBack() (cmd tea.Cmd, shouldExit bool)

	// OnEnter is called when switching to this view.
	// Use this to load data or initialize state.
	OnEnter() tea.Cmd

	// OnExit is called when leaving this view.
	OnExit()
}
