package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptKind says what a submitted prompt creates.
type PromptKind int

const (
	PromptExercise PromptKind = iota
	PromptRoutine
	PromptNote
)

// Prompt is a single-line input dialog.
type Prompt struct {
	Kind  PromptKind
	Title string
	Input textinput.Model

	// Target is the entity the prompt edits, if any.
	Target string
}

// NewPrompt creates a focused prompt.
func NewPrompt(kind PromptKind, title, placeholder string) *Prompt {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 200
	input.Width = 50
	input.Focus()
	return &Prompt{Kind: kind, Title: title, Input: input}
}

// Update forwards a message to the input.
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return cmd
}

// Value returns the trimmed input.
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.Input.Value())
}

// ParseExerciseSpec splits "Name / muscle group".
func ParseExerciseSpec(v string) (name, muscle string) {
	name, muscle, _ = strings.Cut(v, "/")
	return strings.TrimSpace(name), strings.TrimSpace(muscle)
}

// ParseRoutineSpec splits "Name: exercise, exercise, ...".
func ParseRoutineSpec(v string) (name string, exercises []string) {
	name, list, _ := strings.Cut(v, ":")
	for _, e := range strings.Split(list, ",") {
		if e = strings.TrimSpace(e); e != "" {
			exercises = append(exercises, e)
		}
	}
	return strings.TrimSpace(name), exercises
}
