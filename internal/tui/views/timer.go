package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/tui/state"
)

const restStep = 15 * time.Second

// TimerView handles the rest timer tab.
type TimerView struct {
	*BaseView
}

// NewTimerView creates a new TimerView.
func NewTimerView(s *state.State) *TimerView {
	return &TimerView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *TimerView) Name() string {
	return "timer"
}

// OnEnter is called when switching to this view.
func (v *TimerView) OnEnter() tea.Cmd {
	return nil
}

// OnExit keeps the countdown running in the background.
func (v *TimerView) OnExit() {}

// HandleAction processes timer actions.
func (v *TimerView) HandleAction(action string) (tea.Cmd, bool) {
	rest := v.State.Rest
	switch action {
	case "toggle":
		return rest.Toggle(), true
	case "increase":
		rest.Adjust(restStep)
		return nil, true
	case "decrease":
		rest.Adjust(-restStep)
		return nil, true
	case "refresh":
		rest.Reset()
		return nil, true
	}
	return nil, false
}

// HandleSelect starts or pauses the countdown.
func (v *TimerView) HandleSelect() tea.Cmd {
	return v.State.Rest.Toggle()
}

// HandleBack processes Escape for this view.
func (v *TimerView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}
