// Package components provides reusable UI components for the workout TUI.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a self-contained sub-model such as the help overlay.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string

	// SetSize is called on every terminal resize.
	SetSize(width, height int)
}
