package state

import "github.com/hy4ri/workout-tui/internal/store"

// ErrMsg reports a failed background operation.
type ErrMsg struct {
	Err error
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg struct {
	Text string
}

// DayLoadedMsg carries the sessions of one day.
type DayLoadedMsg struct {
	Date     string
	Sessions []store.Session
}

// LibraryLoadedMsg carries the exercise library.
type LibraryLoadedMsg struct {
	Exercises []store.Exercise
}

// RoutinesLoadedMsg carries the routines.
type RoutinesLoadedMsg struct {
	Routines []store.Routine
}

// PlanLoadedMsg carries the active plan, nil when none is active.
type PlanLoadedMsg struct {
	Plan *store.Plan
}

// DataChangedMsg follows a successful write. Reload names what to refetch.
type DataChangedMsg struct {
	Status string
	Reload Reload
}

// Reload is a set of data areas to refetch after a write.
type Reload int

const (
	ReloadDay Reload = 1 << iota
	ReloadLibrary
	ReloadRoutines
	ReloadPlan
	// ReloadStrip starts a new strip render pass.
	ReloadStrip
)

// Has reports whether r includes area.
func (r Reload) Has(area Reload) bool { return r&area != 0 }
