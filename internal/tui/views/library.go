package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// LibraryView handles the exercise library tab.
type LibraryView struct {
	*BaseView
}

// NewLibraryView creates a new LibraryView.
func NewLibraryView(s *state.State) *LibraryView {
	return &LibraryView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *LibraryView) Name() string {
	return "library"
}

// OnEnter reloads the library.
func (v *LibraryView) OnEnter() tea.Cmd {
	return v.LoadLibrary()
}

// OnExit is called when leaving this view.
func (v *LibraryView) OnExit() {}

// HandleAction processes library actions.
func (v *LibraryView) HandleAction(action string) (tea.Cmd, bool) {
	s := v.State
	if listAction(action, &s.ExerciseCursor, len(s.Exercises)) {
		return nil, true
	}

	switch action {
	case "add":
		v.openPrompt(state.NewPrompt(state.PromptExercise, "New exercise", "Name / muscle group"))
		return nil, true
	case "delete":
		if s.ExerciseCursor >= len(s.Exercises) {
			return nil, true
		}
		e := s.Exercises[s.ExerciseCursor]
		return v.DeleteExercise(e.ID, e.Name), true
	case "refresh":
		return v.LoadLibrary(), true
	}
	return nil, false
}

// HandleSelect does nothing on the library.
func (v *LibraryView) HandleSelect() tea.Cmd {
	return nil
}

// HandleBack processes Escape for this view.
func (v *LibraryView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}
