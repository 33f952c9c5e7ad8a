package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// WeekView handles the week strip and the selected day's log.
type WeekView struct {
	*BaseView
}

// NewWeekView creates a new WeekView.
func NewWeekView(s *state.State) *WeekView {
	return &WeekView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *WeekView) Name() string {
	return "week"
}

// OnEnter selects today on first use. Later visits re-render the strip
// around the week it was left on and reload the selected day.
func (v *WeekView) OnEnter() tea.Cmd {
	s := v.State
	if s.Selected.IsZero() || s.AnchorDate.IsZero() {
		date := s.Selected
		if date.IsZero() {
			date = v.Today()
		}
		return SelectDate(s, date)
	}
	return tea.Batch(s.Strip.RenderWeek(), v.LoadDay(s.Selected))
}

// OnExit is called when leaving this view.
func (v *WeekView) OnExit() {}

// HandleAction processes week tab actions.
func (v *WeekView) HandleAction(action string) (tea.Cmd, bool) {
	s := v.State
	cw := s.Config.UI.CellWidth

	switch action {
	case "left":
		return SelectDate(s, calendar.AddDays(s.Selected, -1)), true
	case "right":
		return SelectDate(s, calendar.AddDays(s.Selected, 1)), true
	case "prev_week":
		return s.Strip.HandleNav(-1), true
	case "next_week":
		return s.Strip.HandleNav(+1), true
	case "scroll_left":
		return s.Strip.ScrollBy(-cw), true
	case "scroll_right":
		return s.Strip.ScrollBy(cw), true
	case "today":
		return SelectDate(s, v.Today()), true
	case "up", "down", "top", "bottom":
		listAction(action, &s.SessionCursor, len(s.DaySessions))
		return nil, true
	case "add":
		v.openSetForm()
		return nil, true
	case "delete":
		sess := v.selectedSession()
		if sess == nil {
			return nil, true
		}
		return v.DeleteSession(sess.ID), true
	case "note":
		sess := v.selectedSession()
		if sess == nil {
			v.SetStatus("No session on this day")
			return nil, true
		}
		p := state.NewPrompt(state.PromptNote, "Session note", "e.g. felt strong")
		p.Input.SetValue(sess.Note)
		p.Target = sess.ID
		v.openPrompt(p)
		return nil, true
	case "copy":
		names := utils.ExerciseNames(s.Exercises)
		text := utils.FormatDayLog(calendar.DateKey(s.Selected), s.DaySessions, names, s.Units)
		return CopyText(text, "Copied day log"), true
	case "refresh":
		return tea.Batch(s.Strip.RenderWeek(), v.LoadDay(s.Selected)), true
	}
	return nil, false
}

// HandleSelect opens the set form.
func (v *WeekView) HandleSelect() tea.Cmd {
	v.openSetForm()
	return nil
}

// HandleBack returns to today when another day is selected.
func (v *WeekView) HandleBack() (tea.Cmd, bool) {
	if !calendar.SameDay(v.State.Selected, v.Today()) {
		return SelectDate(v.State, v.Today()), false
	}
	return nil, false
}

func (v *WeekView) selectedSession() *store.Session {
	s := v.State
	if s.SessionCursor < 0 || s.SessionCursor >= len(s.DaySessions) {
		return nil
	}
	return &s.DaySessions[s.SessionCursor]
}

func (v *WeekView) openSetForm() {
	s := v.State
	s.SetForm = state.NewSetForm(s.Selected, s.Units, v.SuggestExercise())
	s.StatusMsg = ""
	s.PreviousView = s.CurrentView
	s.CurrentView = state.ViewSetForm
}

// SuggestExercise picks the name to pre-fill: the first exercise of the
// day's planned routine without a logged set, else the last logged exercise.
func (v *WeekView) SuggestExercise() string {
	s := v.State
	logged := make(map[string]bool)
	last := ""
	for _, sess := range s.DaySessions {
		for _, set := range sess.Sets {
			logged[set.ExerciseID] = true
			last = set.ExerciseID
		}
	}

	if routineID := s.ActivePlan.RoutineFor(calendar.WeekdayIndex(s.Selected)); routineID != "" {
		for _, r := range s.Routines {
			if r.ID != routineID {
				continue
			}
			for _, id := range r.ExerciseIDs {
				if !logged[id] {
					if name := s.ExerciseName(id); name != "" {
						return name
					}
				}
			}
		}
	}
	return strings.TrimSpace(s.ExerciseName(last))
}
