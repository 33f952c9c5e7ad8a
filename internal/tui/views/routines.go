package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// RoutinesView handles the routines tab.
type RoutinesView struct {
	*BaseView
}

// NewRoutinesView creates a new RoutinesView.
func NewRoutinesView(s *state.State) *RoutinesView {
	return &RoutinesView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *RoutinesView) Name() string {
	return "routines"
}

// OnEnter reloads routines and the exercise names they show.
func (v *RoutinesView) OnEnter() tea.Cmd {
	return tea.Batch(v.LoadRoutines(), v.LoadLibrary())
}

// OnExit is called when leaving this view.
func (v *RoutinesView) OnExit() {}

// HandleAction processes routine actions.
func (v *RoutinesView) HandleAction(action string) (tea.Cmd, bool) {
	s := v.State
	if listAction(action, &s.RoutineCursor, len(s.Routines)) {
		return nil, true
	}

	switch action {
	case "add":
		v.openPrompt(state.NewPrompt(state.PromptRoutine, "New routine", "Name: exercise, exercise, ..."))
		return nil, true
	case "delete":
		if s.RoutineCursor >= len(s.Routines) {
			return nil, true
		}
		r := s.Routines[s.RoutineCursor]
		return v.DeleteRoutine(r.ID, r.Name), true
	case "refresh":
		return v.OnEnter(), true
	}
	return nil, false
}

// HandleSelect does nothing on routines.
func (v *RoutinesView) HandleSelect() tea.Cmd {
	return nil
}

// HandleBack processes Escape for this view.
func (v *RoutinesView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}
