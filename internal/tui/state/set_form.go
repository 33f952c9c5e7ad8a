package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/store"
)

// Set form fields in focus order.
const (
	SetFieldExercise = iota
	SetFieldWeight
	SetFieldReps
)

const setFieldCount = 3

// SetInput is a validated set ready to be stored. Weight is kilograms.
type SetInput struct {
	Exercise string
	Weight   float64
	Reps     int
}

// SetForm is the dialog that logs one set on the selected day.
type SetForm struct {
	Exercise textinput.Model
	Weight   textinput.Model
	Reps     textinput.Model

	FocusIndex int
	Date       time.Time
	Units      string
}

// NewSetForm creates a set form for date. lastExercise pre-fills the exercise field.
func NewSetForm(date time.Time, units, lastExercise string) *SetForm {
	exercise := textinput.New()
	exercise.Placeholder = "Exercise"
	exercise.CharLimit = 80
	exercise.Width = 30
	exercise.SetValue(lastExercise)
	exercise.Focus()

	weight := textinput.New()
	weight.Placeholder = "0"
	weight.CharLimit = 8
	weight.Width = 8

	reps := textinput.New()
	reps.Placeholder = "5"
	reps.CharLimit = 4
	reps.Width = 4

	return &SetForm{
		Exercise: exercise,
		Weight:   weight,
		Reps:     reps,
		Date:     date,
		Units:    units,
	}
}

// Update routes a message to the focused input.
func (f *SetForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case SetFieldExercise:
		f.Exercise, cmd = f.Exercise.Update(msg)
	case SetFieldWeight:
		f.Weight, cmd = f.Weight.Update(msg)
	case SetFieldReps:
		f.Reps, cmd = f.Reps.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *SetForm) NextField() {
	f.Focus((f.FocusIndex + 1) % setFieldCount)
}

// PrevField moves focus to the previous field.
func (f *SetForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + setFieldCount) % setFieldCount)
}

// Focus moves focus to field i.
func (f *SetForm) Focus(i int) {
	f.FocusIndex = i
	f.Exercise.Blur()
	f.Weight.Blur()
	f.Reps.Blur()
	switch i {
	case SetFieldExercise:
		f.Exercise.Focus()
	case SetFieldWeight:
		f.Weight.Focus()
	case SetFieldReps:
		f.Reps.Focus()
	}
}

// LastField reports whether the final field has focus.
func (f *SetForm) LastField() bool {
	return f.FocusIndex == setFieldCount-1
}

// Values validates the form. An empty weight means bodyweight.
func (f *SetForm) Values() (SetInput, error) {
	name := strings.TrimSpace(f.Exercise.Value())
	if name == "" {
		return SetInput{}, errors.New("exercise is required")
	}

	var weight float64
	if w := strings.TrimSpace(f.Weight.Value()); w != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(w, ",", "."), 64)
		if err != nil || v < 0 {
			return SetInput{}, fmt.Errorf("invalid weight %q", w)
		}
		weight = store.ToKg(v, f.Units)
	}

	reps, err := strconv.Atoi(strings.TrimSpace(f.Reps.Value()))
	if err != nil || reps <= 0 {
		return SetInput{}, fmt.Errorf("invalid reps %q", f.Reps.Value())
	}

	return SetInput{Exercise: name, Weight: weight, Reps: reps}, nil
}
