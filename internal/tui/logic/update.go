package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
	"github.com/hy4ri/workout-tui/internal/tui/views"
)

// dayLogChrome is the number of rows around the day log: tab bar, strip,
// planned routine line, spacer and status bar.
const dayLogChrome = state.TabBarHeight + strip.Height + 3

// Handler routes messages to the strip engine and the tab views.
type Handler struct {
	*state.State
	coordinator *views.Coordinator

	// notify delivers desktop notifications.
	notify func(title, message string) error
}

// NewHandler creates a Handler for s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:       s,
		coordinator: views.NewCoordinator(s),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Update handles one message and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case strip.FactsLoadedMsg:
		return h.handleFactsLoaded(msg)

	case strip.FrameMsg:
		return h.Strip.Update(msg)

	case strip.DaySelectedMsg:
		return views.SelectDate(h.State, msg.Date)

	case state.DayLoadedMsg:
		// A slow load for a day the user already left is dropped.
		if msg.Date != calendar.DateKey(h.Selected) {
			return nil
		}
		h.DaySessions = msg.Sessions
		views.MoveCursor(&h.SessionCursor, len(h.DaySessions), 0)
		return nil

	case state.LibraryLoadedMsg:
		h.Exercises = msg.Exercises
		views.MoveCursor(&h.ExerciseCursor, len(h.Exercises), 0)
		return nil

	case state.RoutinesLoadedMsg:
		h.Routines = msg.Routines
		views.MoveCursor(&h.RoutineCursor, len(h.Routines), 0)
		return nil

	case state.PlanLoadedMsg:
		h.ActivePlan = msg.Plan
		return nil

	case state.DataChangedMsg:
		return h.handleDataChanged(msg)

	case state.ErrMsg:
		logrus.WithError(msg.Err).Error("operation failed")
		h.Loading = false
		h.Err = msg.Err
		return nil

	case state.StatusMsg:
		h.StatusMsg = msg.Text
		return nil

	case components.TimerTickMsg:
		return h.Rest.Update(msg)

	case components.RestFinishedMsg:
		h.StatusMsg = "Rest over"
		return nil

	case components.CloseHelpMsg:
		h.CurrentView = h.PreviousView
		if h.CurrentView == state.ViewHelp {
			h.CurrentView = state.ViewMain
		}
		return nil

	case reminderTickMsg:
		return h.handleReminderTick(msg)

	case reminderCheckedMsg:
		h.handleReminderChecked(msg)
		return nil
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	vpHeight := max(msg.Height-dayLogChrome, 3)
	vpWidth := max(msg.Width-2*state.StripLeft, 20)
	if !h.ViewportReady {
		h.DayViewport = viewport.New(vpWidth, vpHeight)
		h.DayViewport.Style = lipgloss.NewStyle()
		h.DayViewport.MouseWheelEnabled = true
		h.ViewportReady = true
	} else {
		h.DayViewport.Width = vpWidth
		h.DayViewport.Height = vpHeight
	}

	h.HelpComp.SetSize(msg.Width, msg.Height)
	return nil
}

// handleFactsLoaded hands a render pass result to the strip. Stale passes are
// dropped inside the engine.
func (h *Handler) handleFactsLoaded(msg strip.FactsLoadedMsg) tea.Cmd {
	cmd, err := h.Strip.ApplyFacts(msg)
	if err != nil {
		logrus.WithError(err).WithField("pass", msg.Pass).Error("week strip load failed")
		h.Err = err
	}
	return cmd
}

// handleDataChanged refreshes what a write touched. Writes that change
// session dates or the plan start a new strip pass.
func (h *Handler) handleDataChanged(msg state.DataChangedMsg) tea.Cmd {
	h.Loading = false
	h.Err = nil
	if msg.Status != "" {
		h.StatusMsg = msg.Status
	}

	cmds := []tea.Cmd{views.NewBaseView(h.State).Reload(msg.Reload)}
	if msg.Reload.Has(state.ReloadStrip) {
		cmds = append(cmds, h.Strip.RenderWeek())
	}
	return tea.Batch(cmds...)
}
