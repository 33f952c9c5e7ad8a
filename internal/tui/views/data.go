package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// LoadDay fetches the sessions logged on date.
func (b *BaseView) LoadDay(date time.Time) tea.Cmd {
	st := b.Store
	key := calendar.DateKey(date)
	return func() tea.Msg {
		sessions, err := st.SessionsOn(context.Background(), key)
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("load %s: %w", key, err)}
		}
		return state.DayLoadedMsg{Date: key, Sessions: sessions}
	}
}

// LoadLibrary fetches all exercises.
func (b *BaseView) LoadLibrary() tea.Cmd {
	st := b.Store
	return func() tea.Msg {
		exercises, err := st.ListExercises(context.Background())
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("load exercises: %w", err)}
		}
		return state.LibraryLoadedMsg{Exercises: exercises}
	}
}

// LoadRoutines fetches all routines.
func (b *BaseView) LoadRoutines() tea.Cmd {
	st := b.Store
	return func() tea.Msg {
		routines, err := st.ListRoutines(context.Background())
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("load routines: %w", err)}
		}
		return state.RoutinesLoadedMsg{Routines: routines}
	}
}

// LoadPlan fetches the active plan.
func (b *BaseView) LoadPlan() tea.Cmd {
	st := b.Store
	return func() tea.Msg {
		plan, err := st.GetActivePlan(context.Background())
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("load plan: %w", err)}
		}
		return state.PlanLoadedMsg{Plan: plan}
	}
}

// Reload returns the loaders for every area in r except the strip.
func (b *BaseView) Reload(r state.Reload) tea.Cmd {
	var cmds []tea.Cmd
	if r.Has(state.ReloadDay) && !b.State.Selected.IsZero() {
		cmds = append(cmds, b.LoadDay(b.State.Selected))
	}
	if r.Has(state.ReloadLibrary) {
		cmds = append(cmds, b.LoadLibrary())
	}
	if r.Has(state.ReloadRoutines) {
		cmds = append(cmds, b.LoadRoutines())
	}
	if r.Has(state.ReloadPlan) {
		cmds = append(cmds, b.LoadPlan())
	}
	return tea.Batch(cmds...)
}

// write runs fn off the update loop and reports a DataChangedMsg.
func (b *BaseView) write(status string, reload state.Reload, fn func(ctx context.Context, st *store.Store) error) tea.Cmd {
	st := b.Store
	return func() tea.Msg {
		if err := fn(context.Background(), st); err != nil {
			return state.ErrMsg{Err: err}
		}
		return state.DataChangedMsg{Status: status, Reload: reload}
	}
}

// resolveExercise finds an exercise by name, case-insensitively, creating it
// when the library has none.
func resolveExercise(ctx context.Context, st *store.Store, name string) (store.Exercise, bool, error) {
	exercises, err := st.ListExercises(ctx)
	if err != nil {
		return store.Exercise{}, false, err
	}
	for _, e := range exercises {
		if strings.EqualFold(e.Name, name) {
			return e, false, nil
		}
	}
	e, err := st.PutExercise(ctx, store.Exercise{Name: name})
	if err != nil {
		return store.Exercise{}, false, err
	}
	logrus.WithField("exercise", name).Info("exercise created from set")
	return e, true, nil
}

// LogSet appends a set to the first session on date.
func (b *BaseView) LogSet(date time.Time, in state.SetInput) tea.Cmd {
	st := b.Store
	key := calendar.DateKey(date)
	units := b.State.Units
	return func() tea.Msg {
		ctx := context.Background()
		ex, created, err := resolveExercise(ctx, st, in.Exercise)
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("log set: %w", err)}
		}
		set := store.Set{ExerciseID: ex.ID, Weight: in.Weight, Reps: in.Reps}
		if _, err := st.AddSet(ctx, key, set); err != nil {
			return state.ErrMsg{Err: fmt.Errorf("log set: %w", err)}
		}
		reload := state.ReloadDay | state.ReloadStrip
		if created {
			reload |= state.ReloadLibrary
		}
		return state.DataChangedMsg{
			Status: fmt.Sprintf("Logged %s %s x %d", ex.Name, store.FormatWeight(in.Weight, units), in.Reps),
			Reload: reload,
		}
	}
}

// DeleteSession removes a session and its sets.
func (b *BaseView) DeleteSession(id string) tea.Cmd {
	return b.write("Session deleted", state.ReloadDay|state.ReloadStrip, func(ctx context.Context, st *store.Store) error {
		return st.DeleteSession(ctx, id)
	})
}

// SetSessionNote replaces the note of a session.
func (b *BaseView) SetSessionNote(id, note string) tea.Cmd {
	return b.write("Note saved", state.ReloadDay, func(ctx context.Context, st *store.Store) error {
		sess, err := st.GetSession(ctx, id)
		if err != nil {
			return err
		}
		sess.Note = note
		_, err = st.PutSession(ctx, sess)
		return err
	})
}

// AddExercise adds an exercise to the library.
func (b *BaseView) AddExercise(name, muscle string) tea.Cmd {
	return b.write("Added "+name, state.ReloadLibrary, func(ctx context.Context, st *store.Store) error {
		_, err := st.PutExercise(ctx, store.Exercise{Name: name, MuscleGroup: muscle})
		return err
	})
}

// DeleteExercise removes an exercise from the library.
func (b *BaseView) DeleteExercise(id, name string) tea.Cmd {
	return b.write("Deleted "+name, state.ReloadLibrary|state.ReloadRoutines|state.ReloadDay,
		func(ctx context.Context, st *store.Store) error {
			return st.DeleteExercise(ctx, id)
		})
}

// AddRoutine creates a routine from exercise names, adding unknown names to the library.
func (b *BaseView) AddRoutine(name string, exerciseNames []string) tea.Cmd {
	return b.write("Added "+name, state.ReloadRoutines|state.ReloadLibrary, func(ctx context.Context, st *store.Store) error {
		ids := make([]string, 0, len(exerciseNames))
		for _, n := range exerciseNames {
			ex, _, err := resolveExercise(ctx, st, n)
			if err != nil {
				return err
			}
			ids = append(ids, ex.ID)
		}
		_, err := st.PutRoutine(ctx, store.Routine{Name: name, ExerciseIDs: ids})
		return err
	})
}

// DeleteRoutine removes a routine. Plan days using it become unassigned.
func (b *BaseView) DeleteRoutine(id, name string) tea.Cmd {
	return b.write("Deleted "+name, state.ReloadRoutines|state.ReloadPlan|state.ReloadStrip,
		func(ctx context.Context, st *store.Store) error {
			return st.DeleteRoutine(ctx, id)
		})
}

// AssignPlanDay sets the routine for a weekday (1 = Monday) on the active
// plan, creating an active plan on first use. An empty routineID clears the day.
func (b *BaseView) AssignPlanDay(weekday int, routineID string) tea.Cmd {
	return b.write("Plan updated", state.ReloadPlan|state.ReloadStrip, func(ctx context.Context, st *store.Store) error {
		plan, err := st.GetActivePlan(ctx)
		if err != nil {
			return err
		}
		if plan == nil {
			plan = &store.Plan{Name: "Weekly plan", Active: true}
		}
		plan.Assign(weekday, routineID)
		_, err = st.PutPlan(ctx, *plan)
		return err
	})
}

// CopyText puts text on the system clipboard.
func CopyText(text, status string) tea.Cmd {
	return func() tea.Msg {
		if err := writeAll(text); err != nil {
			return state.ErrMsg{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return state.StatusMsg{Text: status}
	}
}
