// Package tui provides the terminal user interface for the workout tracker.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/logic"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
	"github.com/hy4ri/workout-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp wires the state, the week strip engine, the message handler and
// the renderer around st.
func NewApp(st *store.Store, cfg *config.Config) (*App, error) {
	return newApp(st, cfg, time.Now)
}

func newApp(st *store.Store, cfg *config.Config, now func() time.Time) (*App, error) {
	s := state.New(st, cfg, now)

	engine, err := strip.New(st, s, strip.Options{
		CellWidth:     cfg.UI.CellWidth,
		EdgeTolerance: cfg.UI.EdgeTolerance,
		FrameInterval: time.Duration(cfg.UI.FrameIntervalMS) * time.Millisecond,
		Now:           now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create week strip: %w", err)
	}
	s.Strip = engine

	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
