package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
)

// View represents the current screen layer.
type View int

const (
	ViewMain View = iota
	ViewHelp
	ViewSetForm
	ViewPrompt
)

// Tab represents a top-level tab.
type Tab int

const (
	TabWeek Tab = iota
	TabLibrary
	TabRoutines
	TabPlan
	TabTimer
)

// Screen layout shared by the renderer and mouse hit-testing.
const (
	// TabBarHeight is the tab row plus its bottom border.
	TabBarHeight = 2
	// StripLeft is the column where the week strip starts.
	StripLeft = 1
	// StripTop is the row where the week strip starts.
	StripTop = TabBarHeight
)

// Keymap defines keybindings.
type Keymap interface {
	HelpItems() [][]string
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *store.Store
	Config *config.Config
	Now    func() time.Time

	// View state
	CurrentView  View
	PreviousView View
	CurrentTab   Tab

	// Week tab
	Strip         *strip.Engine
	Selected      time.Time
	AnchorDate    time.Time
	DaySessions   []store.Session
	SessionCursor int
	DayViewport   viewport.Model
	ViewportReady bool

	// Library, routines and plan tabs
	Exercises      []store.Exercise
	Routines       []store.Routine
	ActivePlan     *store.Plan
	ExerciseCursor int
	RoutineCursor  int
	PlanCursor     int

	// Units is the display unit for weights, "kg" or "lb".
	Units string

	// Rest timer
	Rest *components.RestTimer

	// Reminders
	LastReminder string

	// UI state
	Loading   bool
	Err       error
	StatusMsg string
	Width     int
	Height    int
	Spinner   spinner.Model

	// Input state
	Keymap      KeymapData
	KeyState    *KeyState
	HelpComp    *components.HelpModel
	SetForm     *SetForm
	Prompt      *Prompt
	CommandLine *CommandLine
}

// New builds the initial state for cfg. The strip engine is attached by the caller.
func New(st *store.Store, cfg *config.Config, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &State{
		Store:       st,
		Config:      cfg,
		Now:         now,
		CurrentTab:  TabFromName(cfg.UI.StartTab),
		Units:       cfg.UI.Units,
		Rest:        components.NewRestTimer(time.Duration(cfg.UI.RestSeconds) * time.Second),
		Spinner:     sp,
		Keymap:      DefaultKeymap(),
		KeyState:    &KeyState{NoVim: !cfg.UI.VimMode},
		HelpComp:    components.NewHelp(),
		CommandLine: NewCommandLine(),
	}
}

// SelectedDate returns the selected day, or zero before the first selection.
func (s *State) SelectedDate() time.Time { return s.Selected }

// Anchor returns the date the strip should center on, or zero to fall back
// to the selection.
func (s *State) Anchor() time.Time { return s.AnchorDate }

// SetAnchor records the week the strip is centered on.
func (s *State) SetAnchor(t time.Time) { s.AnchorDate = t }

// Select moves the selection to date and clears the session cursor.
func (s *State) Select(date time.Time) {
	s.Selected = date
	s.SessionCursor = 0
}

// ExerciseName looks up an exercise name by ID.
func (s *State) ExerciseName(id string) string {
	for _, e := range s.Exercises {
		if e.ID == id {
			return e.Name
		}
	}
	return ""
}

// RoutineName looks up a routine name by ID.
func (s *State) RoutineName(id string) string {
	for _, r := range s.Routines {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab       Tab
	Name      string
	ShortName string
}

// shortLabelWidth is the terminal width below which tabs use short names.
const shortLabelWidth = 60

// Label returns the tab's display name for a terminal width.
func (t TabInfo) Label(width int) string {
	if width < shortLabelWidth {
		return t.ShortName
	}
	return t.Name
}

// GetTabDefinitions returns the tab definitions.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabWeek, "Week", "Wk"},
		{TabLibrary, "Library", "Lib"},
		{TabRoutines, "Routines", "Rtn"},
		{TabPlan, "Plan", "Pln"},
		{TabTimer, "Rest", "Rst"},
	}
}

// TabFromName maps a config or flag value to a tab. Unknown names give TabWeek.
func TabFromName(name string) Tab {
	switch name {
	case "library":
		return TabLibrary
	case "routines":
		return TabRoutines
	case "plan":
		return TabPlan
	case "timer", "rest":
		return TabTimer
	default:
		return TabWeek
	}
}
