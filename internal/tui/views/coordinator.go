package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// Coordinator manages view lifecycle and delegates to the active view.
type Coordinator struct {
	registry    *Registry
	state       *state.State
	currentView ViewHandler
}

// NewCoordinator creates a new view coordinator.
func NewCoordinator(s *state.State) *Coordinator {
	reg := DefaultRegistry(s)
	c := &Coordinator{
		registry: reg,
		state:    s,
	}

	if view, ok := reg.GetViewForTab(s.CurrentTab); ok {
		c.currentView = view
	}

	return c
}

// GetRegistry returns the registry.
func (c *Coordinator) GetRegistry() *Registry {
	return c.registry
}

// GetCurrentView returns the active view.
func (c *Coordinator) GetCurrentView() ViewHandler {
	return c.currentView
}

// SwitchToTab switches to the view for the given tab.
func (c *Coordinator) SwitchToTab(tab state.Tab) tea.Cmd {
	view, ok := c.registry.GetViewForTab(tab)
	if !ok {
		return nil
	}

	if c.currentView != nil {
		c.currentView.OnExit()
	}

	c.currentView = view
	c.state.CurrentTab = tab
	c.state.CurrentView = state.ViewMain

	return c.currentView.OnEnter()
}

// CycleTab moves delta tabs forward or backward, wrapping around.
func (c *Coordinator) CycleTab(delta int) tea.Cmd {
	tabs := c.registry.GetTabs()
	if len(tabs) == 0 {
		return nil
	}
	idx := 0
	for i, t := range tabs {
		if t.Tab == c.state.CurrentTab {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	return c.SwitchToTab(tabs[idx].Tab)
}

// HandleAction delegates an action to the current view.
// Returns the command and whether the action was consumed.
func (c *Coordinator) HandleAction(action string) (tea.Cmd, bool) {
	if c.currentView == nil {
		return nil, false
	}
	return c.currentView.HandleAction(action)
}

// HandleSelect delegates selection to the current view.
func (c *Coordinator) HandleSelect() tea.Cmd {
	if c.currentView == nil {
		return nil
	}
	return c.currentView.HandleSelect()
}

// HandleBack delegates back/escape to the current view.
func (c *Coordinator) HandleBack() (tea.Cmd, bool) {
	if c.currentView == nil {
		return nil, false
	}
	return c.currentView.HandleBack()
}

// GetTabs returns all registered tabs.
func (c *Coordinator) GetTabs() []TabInfo {
	return c.registry.GetTabs()
}
