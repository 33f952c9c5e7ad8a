package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// BaseView provides common functionality for all views.
// Views embed this struct to get shared helpers.
type BaseView struct {
	State *state.State
	Store *store.Store
}

// NewBaseView creates a new BaseView with the given state.
func NewBaseView(s *state.State) *BaseView {
	return &BaseView{
		State: s,
		Store: s.Store,
	}
}

// MoveCursor moves *cursor by delta within [0, n).
func MoveCursor(cursor *int, n, delta int) {
	*cursor += delta
	if *cursor >= n {
		*cursor = n - 1
	}
	if *cursor < 0 {
		*cursor = 0
	}
}

// listAction applies the shared list movement actions.
func listAction(action string, cursor *int, n int) bool {
	switch action {
	case "up":
		MoveCursor(cursor, n, -1)
	case "down":
		MoveCursor(cursor, n, 1)
	case "top":
		*cursor = 0
	case "bottom":
		MoveCursor(cursor, n, n)
	default:
		return false
	}
	return true
}

// SetStatus sets a status message.
func (b *BaseView) SetStatus(msg string) {
	b.State.StatusMsg = msg
}

// openPrompt shows a single-line input dialog.
func (b *BaseView) openPrompt(p *state.Prompt) {
	b.State.Prompt = p
	b.State.StatusMsg = ""
	b.State.PreviousView = b.State.CurrentView
	b.State.CurrentView = state.ViewPrompt
}

// Today returns the current day at midnight per the state clock.
func (b *BaseView) Today() time.Time {
	return calendar.Today(b.State.Now)
}

// SelectDate makes date the selected day, centers the strip on its week and
// reloads the day log.
func SelectDate(s *state.State, date time.Time) tea.Cmd {
	date = calendar.Midnight(date)
	s.Select(date)
	s.AnchorDate = calendar.StartOfWeek(date)
	b := NewBaseView(s)
	var cmds []tea.Cmd
	if s.Strip != nil {
		// Move the highlight now; the pass below recenters once facts arrive.
		if s.Strip.Shows(date) {
			s.Strip.Repaint()
		}
		cmds = append(cmds, s.Strip.RenderWeek())
	}
	cmds = append(cmds, b.LoadDay(date))
	return tea.Batch(cmds...)
}
