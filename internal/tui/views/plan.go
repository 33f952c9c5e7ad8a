package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// PlanView assigns routines to weekdays on the active plan.
type PlanView struct {
	*BaseView
}

// NewPlanView creates a new PlanView.
func NewPlanView(s *state.State) *PlanView {
	return &PlanView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *PlanView) Name() string {
	return "plan"
}

// OnEnter reloads the plan and the routines it can assign.
func (v *PlanView) OnEnter() tea.Cmd {
	return tea.Batch(v.LoadPlan(), v.LoadRoutines())
}

// OnExit is called when leaving this view.
func (v *PlanView) OnExit() {}

// HandleAction processes plan actions. The cursor row is the weekday index minus one.
func (v *PlanView) HandleAction(action string) (tea.Cmd, bool) {
	s := v.State
	if listAction(action, &s.PlanCursor, calendar.DaysPerWeek) {
		return nil, true
	}

	switch action {
	case "toggle", "right":
		return v.cycle(1), true
	case "left":
		return v.cycle(-1), true
	case "delete":
		return v.AssignPlanDay(s.PlanCursor+1, ""), true
	case "refresh":
		return v.OnEnter(), true
	}
	return nil, false
}

// HandleSelect cycles the routine of the weekday under the cursor.
func (v *PlanView) HandleSelect() tea.Cmd {
	return v.cycle(1)
}

// HandleBack processes Escape for this view.
func (v *PlanView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}

// cycle steps through none, each routine in order, then none again.
func (v *PlanView) cycle(dir int) tea.Cmd {
	s := v.State
	if len(s.Routines) == 0 {
		v.SetStatus("Add a routine first")
		return nil
	}
	weekday := s.PlanCursor + 1
	next := NextRoutine(s.Routines, s.ActivePlan.RoutineFor(weekday), dir)
	return v.AssignPlanDay(weekday, next)
}

// NextRoutine returns the routine after current in dir order, where "" sits
// before the first routine.
func NextRoutine(routines []store.Routine, current string, dir int) string {
	n := len(routines) + 1
	pos := 0
	for i, r := range routines {
		if r.ID == current {
			pos = i + 1
			break
		}
	}
	pos = ((pos+dir)%n + n) % n
	if pos == 0 {
		return ""
	}
	return routines[pos-1].ID
}
