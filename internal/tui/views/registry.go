package views

import (
	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// TabInfo holds metadata for a tab.
type TabInfo struct {
	Tab       state.Tab
	Name      string
	ShortName string
	ViewName  string // Maps to ViewHandler.Name()
}

// Registry holds all registered views and tabs.
type Registry struct {
	views map[string]ViewHandler
	tabs  []TabInfo
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string]ViewHandler),
	}
}

// RegisterView adds a view to the registry.
func (r *Registry) RegisterView(view ViewHandler) {
	r.views[view.Name()] = view
}

// RegisterTab adds a tab with its associated view.
func (r *Registry) RegisterTab(tab state.Tab, name, shortName, viewName string) {
	r.tabs = append(r.tabs, TabInfo{
		Tab:       tab,
		Name:      name,
		ShortName: shortName,
		ViewName:  viewName,
	})
}

// GetView returns a view by name.
func (r *Registry) GetView(name string) (ViewHandler, bool) {
	view, ok := r.views[name]
	return view, ok
}

// GetViewForTab returns the view associated with a tab.
func (r *Registry) GetViewForTab(tab state.Tab) (ViewHandler, bool) {
	for _, t := range r.tabs {
		if t.Tab == tab {
			return r.GetView(t.ViewName)
		}
	}
	return nil, false
}

// GetTabs returns all registered tabs.
func (r *Registry) GetTabs() []TabInfo {
	return r.tabs
}

// DefaultRegistry creates a registry with all standard views and tabs.
func DefaultRegistry(s *state.State) *Registry {
	r := NewRegistry()

	r.RegisterView(NewWeekView(s))
	r.RegisterView(NewLibraryView(s))
	r.RegisterView(NewRoutinesView(s))
	r.RegisterView(NewPlanView(s))
	r.RegisterView(NewTimerView(s))

	viewNames := map[state.Tab]string{
		state.TabWeek:     "week",
		state.TabLibrary:  "library",
		state.TabRoutines: "routines",
		state.TabPlan:     "plan",
		state.TabTimer:    "timer",
	}
	for _, t := range state.GetTabDefinitions() {
		r.RegisterTab(t.Tab, t.Name, t.ShortName, viewNames[t.Tab])
	}

	return r
}
