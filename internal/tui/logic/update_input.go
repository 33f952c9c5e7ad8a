package logic

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/views"
)

var errNameRequired = errors.New("name is required")

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	// Skip if a dialog or the command line owns input
	if h.CurrentView != state.ViewMain || h.CommandLine.Active {
		return nil
	}

	if msg.Y < state.TabBarHeight {
		if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return h.handleTabClick(msg.X)
		}
		return nil
	}

	if h.CurrentTab != state.TabWeek {
		return nil
	}

	if row := msg.Y - state.StripTop; row >= 0 && row < strip.Height {
		return h.handleStripMouse(msg, row)
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		h.DayViewport, cmd = h.DayViewport.Update(msg)
		return cmd
	}
	return nil
}

// handleStripMouse maps wheel and click events over the strip to the engine.
// Shift turns the vertical wheel into horizontal scrolling.
func (h *Handler) handleStripMouse(msg tea.MouseMsg, row int) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelLeft:
		return h.Strip.ScrollBy(-strip.WheelStep)
	case tea.MouseButtonWheelRight:
		return h.Strip.ScrollBy(strip.WheelStep)
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			return h.Strip.ScrollBy(-strip.WheelStep)
		}
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			return h.Strip.ScrollBy(strip.WheelStep)
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && row >= strip.CellRow {
			return h.Strip.Click(msg.X - state.StripLeft)
		}
	}
	return nil
}

// handleTabClick handles mouse clicks on the tab bar.
func (h *Handler) handleTabClick(x int) tea.Cmd {
	currentPos := 1 // Start after styles.TabBar left padding

	for _, t := range state.GetTabDefinitions() {
		label := t.Label(h.Width)

		var renderedTab string
		if h.CurrentTab == t.Tab {
			renderedTab = styles.TabActive.Render(label)
		} else {
			renderedTab = styles.Tab.Render(label)
		}

		endPos := currentPos + lipgloss.Width(renderedTab)
		if x >= currentPos && x < endPos {
			return h.switchToTab(t.Tab)
		}

		// +1 for the space separator between tabs
		currentPos = endPos + 1
	}

	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.CommandLine.Active {
		return h.handleCommandLineKeyMsg(msg)
	}

	// Dialogs capture every key so digits and letters reach their inputs
	switch h.CurrentView {
	case state.ViewHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	case state.ViewSetForm:
		return h.handleSetFormKeyMsg(msg)
	case state.ViewPrompt:
		return h.handlePromptKeyMsg(msg)
	}

	action, consumed := h.KeyState.HandleKey(msg, h.Keymap)
	if !consumed || action == "" {
		return nil
	}

	switch action {
	case "quit":
		return tea.Quit
	case "help":
		h.openHelp()
		return nil
	case "command":
		h.CommandLine.Open()
		return textinput.Blink
	case "next_tab":
		return h.coordinator.CycleTab(1)
	case "prev_tab":
		return h.coordinator.CycleTab(-1)
	case "tab_1", "tab_2", "tab_3", "tab_4", "tab_5":
		return h.switchToTab(state.Tab(action[len("tab_")] - '1'))
	case "units":
		h.toggleUnits()
		return nil
	case "select":
		return h.coordinator.HandleSelect()
	case "back":
		h.Err = nil
		h.StatusMsg = ""
		cmd, _ := h.coordinator.HandleBack()
		return cmd
	}

	cmd, _ := h.coordinator.HandleAction(action)
	return cmd
}

func (h *Handler) handleCommandLineKeyMsg(msg tea.KeyMsg) tea.Cmd {
	cl := h.CommandLine
	switch msg.String() {
	case "esc":
		cl.Close()
		return nil
	case "enter":
		return h.executeCommand(cl.Input.Value())
	case "tab":
		return h.autocompleteCommand()
	case "up":
		return h.commandHistoryPrev()
	case "down":
		return h.commandHistoryNext()
	}

	var cmd tea.Cmd
	cl.Input, cmd = cl.Input.Update(msg)
	h.updateSuggestions()
	return cmd
}

func (h *Handler) handleSetFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	form := h.SetForm
	if form == nil {
		h.CurrentView = state.ViewMain
		return nil
	}

	switch msg.String() {
	case "esc":
		h.closeDialog()
		return nil
	case "enter":
		if !form.LastField() {
			form.NextField()
			return nil
		}
		in, err := form.Values()
		if err != nil {
			h.StatusMsg = err.Error()
			return nil
		}
		h.closeDialog()
		h.StatusMsg = ""
		return views.NewBaseView(h.State).LogSet(form.Date, in)
	}

	return form.Update(msg)
}

func (h *Handler) handlePromptKeyMsg(msg tea.KeyMsg) tea.Cmd {
	p := h.Prompt
	if p == nil {
		h.CurrentView = state.ViewMain
		return nil
	}

	switch msg.String() {
	case "esc":
		h.closeDialog()
		return nil
	case "enter":
		cmd, err := h.submitPrompt(p)
		if err != nil {
			h.StatusMsg = err.Error()
			return nil
		}
		h.closeDialog()
		h.StatusMsg = ""
		return cmd
	}

	return p.Update(msg)
}

// submitPrompt turns a prompt value into the write it stands for.
func (h *Handler) submitPrompt(p *state.Prompt) (tea.Cmd, error) {
	b := views.NewBaseView(h.State)
	switch p.Kind {
	case state.PromptExercise:
		name, muscle := state.ParseExerciseSpec(p.Value())
		if name == "" {
			return nil, errNameRequired
		}
		return b.AddExercise(name, muscle), nil
	case state.PromptRoutine:
		name, exercises := state.ParseRoutineSpec(p.Value())
		if name == "" {
			return nil, errNameRequired
		}
		return b.AddRoutine(name, exercises), nil
	case state.PromptNote:
		return b.SetSessionNote(p.Target, p.Value()), nil
	}
	return nil, nil
}

func (h *Handler) closeDialog() {
	h.SetForm = nil
	h.Prompt = nil
	h.CurrentView = state.ViewMain
}

func (h *Handler) switchToTab(tab state.Tab) tea.Cmd {
	h.KeyState.Reset()
	return h.coordinator.SwitchToTab(tab)
}

func (h *Handler) openHelp() {
	h.HelpComp.SetKeymap(h.Keymap.HelpItems())
	h.HelpComp.SetSize(h.Width, h.Height)
	if h.CurrentView != state.ViewHelp {
		h.PreviousView = h.CurrentView
	}
	h.CurrentView = state.ViewHelp
}

// toggleUnits flips the display unit for this run. Stored weights stay in kg.
func (h *Handler) toggleUnits() {
	if h.Units == store.UnitLb {
		h.Units = store.UnitKg
	} else {
		h.Units = store.UnitLb
	}
	h.StatusMsg = "Units: " + h.Units
}

// refreshAll reloads every data area and starts a new strip pass.
func (h *Handler) refreshAll() tea.Cmd {
	reload := state.ReloadDay | state.ReloadLibrary | state.ReloadRoutines | state.ReloadPlan
	return tea.Batch(views.NewBaseView(h.State).Reload(reload), h.Strip.RenderWeek())
}
