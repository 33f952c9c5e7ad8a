package views

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	st, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	s := state.New(st, config.DefaultConfig(), func() time.Time { return testNow })
	s.Strip, err = strip.New(st, s, strip.Options{CellWidth: 8, FrameInterval: time.Millisecond, Now: s.Now})
	require.NoError(t, err)
	return s
}

func day(key string) time.Time {
	d, err := calendar.ParseKey(key)
	if err != nil {
		panic(err)
	}
	return d
}

// collect runs cmd, expanding batches, and returns every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle runs the snap frames until the strip accepts input again.
func settle(s *state.State, cmd tea.Cmd) {
	for cmd != nil {
		cmd = s.Strip.Update(cmd())
	}
}

func TestSelectDateSetsAnchorAndLoads(t *testing.T) {
	s := newTestState(t)
	s.SessionCursor = 2

	msgs := collect(SelectDate(s, day("2024-06-13").Add(5*time.Hour)))

	assert.Equal(t, day("2024-06-13"), s.Selected)
	assert.Equal(t, day("2024-06-10"), s.AnchorDate)
	assert.Zero(t, s.SessionCursor)

	var gotFacts, gotDay bool
	for _, m := range msgs {
		switch m := m.(type) {
		case strip.FactsLoadedMsg:
			gotFacts = true
		case state.DayLoadedMsg:
			gotDay = true
			assert.Equal(t, "2024-06-13", m.Date)
		}
	}
	assert.True(t, gotFacts, "strip render pass started")
	assert.True(t, gotDay, "day log requested")
}

func TestLogSetCreatesExercise(t *testing.T) {
	s := newTestState(t)
	v := NewWeekView(s)

	msg := v.LogSet(day("2024-06-10"), state.SetInput{Exercise: "Squat", Weight: 100, Reps: 5})()
	changed, ok := msg.(state.DataChangedMsg)
	require.True(t, ok, "%#v", msg)
	assert.Equal(t, "Logged Squat 100 kg x 5", changed.Status)
	assert.True(t, changed.Reload.Has(state.ReloadStrip))
	assert.True(t, changed.Reload.Has(state.ReloadDay))
	assert.True(t, changed.Reload.Has(state.ReloadLibrary))

	// Second set reuses the exercise regardless of case.
	msg = v.LogSet(day("2024-06-10"), state.SetInput{Exercise: "squat", Weight: 100, Reps: 3})()
	changed = msg.(state.DataChangedMsg)
	assert.False(t, changed.Reload.Has(state.ReloadLibrary))

	ctx := context.Background()
	exercises, err := s.Store.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, exercises, 1)

	sessions, err := s.Store.SessionsOn(ctx, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Sets, 2)
}

func TestWeekDeleteAndNote(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	ex, err := s.Store.PutExercise(ctx, store.Exercise{Name: "Row"})
	require.NoError(t, err)
	sess, err := s.Store.AddSet(ctx, "2024-06-10", store.Set{ExerciseID: ex.ID, Weight: 60, Reps: 8})
	require.NoError(t, err)

	s.Selected = day("2024-06-10")
	s.DaySessions = []store.Session{sess}
	v := NewWeekView(s)

	_, consumed := v.HandleAction("note")
	assert.True(t, consumed)
	require.NotNil(t, s.Prompt)
	assert.Equal(t, state.ViewPrompt, s.CurrentView)
	assert.Equal(t, sess.ID, s.Prompt.Target)

	msg := v.SetSessionNote(sess.ID, "easy")()
	assert.Equal(t, state.DataChangedMsg{Status: "Note saved", Reload: state.ReloadDay}, msg)
	got, err := s.Store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "easy", got.Note)

	cmd, _ := v.HandleAction("delete")
	require.NotNil(t, cmd)
	changed := cmd().(state.DataChangedMsg)
	assert.True(t, changed.Reload.Has(state.ReloadStrip))
	_, err = s.Store.GetSession(ctx, sess.ID)
	assert.True(t, store.IsNotFound(err))

	// Deleting a missing session reports the error.
	msg = v.DeleteSession(sess.ID)()
	_, isErr := msg.(state.ErrMsg)
	assert.True(t, isErr)
}

func TestWeekOpenSetFormSuggestsPlannedExercise(t *testing.T) {
	s := newTestState(t)
	s.Selected = day("2024-06-11") // Tuesday
	s.Exercises = []store.Exercise{{ID: "b", Name: "Bench"}, {ID: "d", Name: "Dips"}}
	s.Routines = []store.Routine{{ID: "push", Name: "Push", ExerciseIDs: []string{"b", "d"}}}
	s.ActivePlan = &store.Plan{Days: map[string]string{"2": "push"}}
	s.DaySessions = []store.Session{{Sets: []store.Set{{ExerciseID: "b", Weight: 80, Reps: 5}}}}

	v := NewWeekView(s)
	v.HandleSelect()

	require.NotNil(t, s.SetForm)
	assert.Equal(t, state.ViewSetForm, s.CurrentView)
	assert.Equal(t, "Dips", s.SetForm.Exercise.Value())

	// Unplanned day falls back to the last logged exercise.
	s.Selected = day("2024-06-12")
	assert.Equal(t, "Bench", v.SuggestExercise())
}

func TestWeekNavigation(t *testing.T) {
	s := newTestState(t)
	v := NewWeekView(s)

	for _, m := range collect(v.OnEnter()) {
		if facts, ok := m.(strip.FactsLoadedMsg); ok {
			snap, err := s.Strip.ApplyFacts(facts)
			require.NoError(t, err)
			settle(s, snap)
		}
	}
	assert.Equal(t, day("2024-06-10"), s.Selected)
	require.True(t, s.Strip.Loaded())

	v.HandleAction("right")
	assert.Equal(t, day("2024-06-11"), s.Selected)

	// Week nav moves the strip window, not the selection.
	cmd, _ := v.HandleAction("next_week")
	assert.NotNil(t, cmd)
	assert.Equal(t, day("2024-06-17"), s.Strip.CenterStart())
	assert.Equal(t, day("2024-06-17"), s.AnchorDate)
	assert.Equal(t, day("2024-06-11"), s.Selected)

	_, back := v.HandleBack()
	assert.False(t, back)
	assert.Equal(t, day("2024-06-10"), s.Selected)
}

func TestSelectDateRepaintsVisibleWeek(t *testing.T) {
	s := newTestState(t)
	v := NewWeekView(s)
	for _, m := range collect(v.OnEnter()) {
		if facts, ok := m.(strip.FactsLoadedMsg); ok {
			snap, err := s.Strip.ApplyFacts(facts)
			require.NoError(t, err)
			settle(s, snap)
		}
	}

	// The pass is not run: the highlight must move on its own.
	SelectDate(s, day("2024-06-12"))

	selected := map[string]bool{}
	for _, p := range s.Strip.Pages() {
		for _, c := range p.Cells {
			if c.IsSelected {
				selected[c.Key] = true
			}
		}
	}
	assert.Equal(t, map[string]bool{"2024-06-12": true}, selected)
}

func TestWeekOnEnterKeepsPagedAnchor(t *testing.T) {
	s := newTestState(t)
	v := NewWeekView(s)
	for _, m := range collect(v.OnEnter()) {
		if facts, ok := m.(strip.FactsLoadedMsg); ok {
			snap, err := s.Strip.ApplyFacts(facts)
			require.NoError(t, err)
			settle(s, snap)
		}
	}
	cmd, _ := v.HandleAction("next_week")
	settle(s, cmd)
	require.Equal(t, day("2024-06-17"), s.AnchorDate)

	var gotDay bool
	for _, m := range collect(v.OnEnter()) {
		switch m := m.(type) {
		case strip.FactsLoadedMsg:
			snap, err := s.Strip.ApplyFacts(m)
			require.NoError(t, err)
			settle(s, snap)
		case state.DayLoadedMsg:
			gotDay = true
			assert.Equal(t, "2024-06-10", m.Date)
		}
	}
	assert.True(t, gotDay, "day log reloaded")
	assert.Equal(t, day("2024-06-17"), s.Strip.CenterStart())
	assert.Equal(t, day("2024-06-10"), s.Selected)
}

func TestLibraryAndRoutines(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()

	lib := NewLibraryView(s)
	msg := lib.AddExercise("Squat", "legs")()
	assert.Equal(t, state.DataChangedMsg{Status: "Added Squat", Reload: state.ReloadLibrary}, msg)

	loaded := lib.LoadLibrary()().(state.LibraryLoadedMsg)
	require.Len(t, loaded.Exercises, 1)
	assert.Equal(t, "legs", loaded.Exercises[0].MuscleGroup)

	lib.HandleAction("add")
	require.NotNil(t, s.Prompt)
	assert.Equal(t, state.PromptExercise, s.Prompt.Kind)

	routines := NewRoutinesView(s)
	msg = routines.AddRoutine("Legs", []string{"squat", "Lunge"})()
	_, ok := msg.(state.DataChangedMsg)
	require.True(t, ok, "%#v", msg)

	all, err := s.Store.ListRoutines(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].ExerciseIDs, 2)
	assert.Equal(t, loaded.Exercises[0].ID, all[0].ExerciseIDs[0])

	s.Routines = all
	cmd, _ := routines.HandleAction("delete")
	require.NotNil(t, cmd)
	changed := cmd().(state.DataChangedMsg)
	assert.True(t, changed.Reload.Has(state.ReloadPlan))
}

func TestPlanCycle(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	a, err := s.Store.PutRoutine(ctx, store.Routine{Name: "A"})
	require.NoError(t, err)
	b, err := s.Store.PutRoutine(ctx, store.Routine{Name: "B"})
	require.NoError(t, err)
	s.Routines = []store.Routine{a, b}

	v := NewPlanView(s)
	v.HandleAction("down") // Tuesday
	cmd := v.HandleSelect()
	require.NotNil(t, cmd)
	changed := cmd().(state.DataChangedMsg)
	assert.True(t, changed.Reload.Has(state.ReloadStrip))

	plan, err := s.Store.GetActivePlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, a.ID, plan.RoutineFor(2))

	s.ActivePlan = plan
	cmd, _ = v.HandleAction("delete")
	cmd()
	plan, err = s.Store.GetActivePlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", plan.RoutineFor(2))

	s.Routines = nil
	assert.Nil(t, v.HandleSelect())
	assert.Equal(t, "Add a routine first", s.StatusMsg)
}

func TestNextRoutine(t *testing.T) {
	rs := []store.Routine{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, "a", NextRoutine(rs, "", 1))
	assert.Equal(t, "b", NextRoutine(rs, "a", 1))
	assert.Equal(t, "", NextRoutine(rs, "b", 1))
	assert.Equal(t, "b", NextRoutine(rs, "", -1))
	assert.Equal(t, "a", NextRoutine(rs, "gone", 1))
}

func TestTimerView(t *testing.T) {
	s := newTestState(t)
	v := NewTimerView(s)

	cmd, ok := v.HandleAction("toggle")
	assert.True(t, ok)
	assert.NotNil(t, cmd)
	assert.True(t, s.Rest.Running())

	v.HandleAction("refresh")
	assert.False(t, s.Rest.Running())

	v.HandleAction("increase")
	assert.Equal(t, 105*time.Second, s.Rest.Remaining())
	v.HandleAction("decrease")
	assert.Equal(t, 90*time.Second, s.Rest.Remaining())

	_, ok = v.HandleAction("add")
	assert.False(t, ok)
}

func TestCoordinatorSwitchesTabs(t *testing.T) {
	s := newTestState(t)
	s.CurrentTab = state.TabLibrary
	c := NewCoordinator(s)
	assert.Equal(t, "library", c.GetCurrentView().Name())

	s.CurrentView = state.ViewHelp
	cmd := c.SwitchToTab(state.TabPlan)
	assert.NotNil(t, cmd)
	assert.Equal(t, state.TabPlan, s.CurrentTab)
	assert.Equal(t, state.ViewMain, s.CurrentView)

	c.CycleTab(1)
	assert.Equal(t, state.TabTimer, s.CurrentTab)
	c.CycleTab(1)
	assert.Equal(t, state.TabWeek, s.CurrentTab)
	c.CycleTab(-1)
	assert.Equal(t, state.TabTimer, s.CurrentTab)

	assert.Len(t, c.GetTabs(), 5)
}

func TestCopyText(t *testing.T) {
	var got string
	orig := writeAll
	t.Cleanup(func() { writeAll = orig })
	writeAll = func(s string) error { got = s; return nil }

	assert.Equal(t, state.StatusMsg{Text: "Copied"}, CopyText("log", "Copied")())
	assert.Equal(t, "log", got)

	writeAll = func(string) error { return errors.New("no clipboard") }
	_, isErr := CopyText("log", "Copied")().(state.ErrMsg)
	assert.True(t, isErr)
}
