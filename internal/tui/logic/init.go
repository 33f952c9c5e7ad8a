package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/tui/views"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.LoadInitialData(),
		h.switchToTab(h.CurrentTab),
		reminderTickCmd(),
		h.checkReminder(h.Now()),
	)
}

// LoadInitialData loads the library, routines and active plan. The week tab
// loads its own day and strip when entered.
func (h *Handler) LoadInitialData() tea.Cmd {
	b := views.NewBaseView(h.State)
	return tea.Batch(
		b.LoadLibrary(),
		b.LoadRoutines(),
		b.LoadPlan(),
	)
}
