package ui

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/strip"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// Monday
var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	st, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	s := state.New(st, config.DefaultConfig(), func() time.Time { return testNow })
	eng, err := strip.New(st, s, strip.Options{CellWidth: 8, FrameInterval: time.Millisecond, Now: s.Now})
	require.NoError(t, err)
	s.Strip = eng
	s.Width, s.Height = 100, 30
	return NewRenderer(s)
}

// loadStrip runs one render pass to completion.
func loadStrip(t *testing.T, r *Renderer) {
	t.Helper()
	r.Select(testNow)
	msg, ok := r.Strip.RenderWeek()().(strip.FactsLoadedMsg)
	require.True(t, ok)
	cmd, err := r.Strip.ApplyFacts(msg)
	require.NoError(t, err)
	for cmd != nil {
		cmd = r.Strip.Update(cmd())
	}
	require.False(t, r.Strip.Adjusting())
}

func TestViewBeforeFirstResize(t *testing.T) {
	r := newTestRenderer(t)
	r.Width = 0
	assert.Equal(t, "Loading...", r.View())
}

func TestTabBarLabels(t *testing.T) {
	r := newTestRenderer(t)

	bar := r.renderTabBar()
	for _, name := range []string{"Week", "Library", "Routines", "Plan", "Rest"} {
		assert.Contains(t, bar, name)
	}

	r.Width = 40
	bar = r.renderTabBar()
	assert.Contains(t, bar, "Lib")
	assert.NotContains(t, bar, "Library")
}

func TestStatusBar(t *testing.T) {
	r := newTestRenderer(t)

	r.StatusMsg = "Logged Squat 100 kg x 5"
	assert.Contains(t, r.renderStatusBar(), "Logged Squat 100 kg x 5")

	r.Err = assert.AnError
	bar := r.renderStatusBar()
	assert.Contains(t, bar, "Error: ")
	assert.NotContains(t, bar, "Logged")
	assert.Equal(t, r.Width, lipgloss.Width(bar))
}

func TestRenderWeek(t *testing.T) {
	r := newTestRenderer(t)
	loadStrip(t, r)

	r.Exercises = []store.Exercise{{ID: "sq", Name: "Squat"}}
	r.DaySessions = []store.Session{{
		ID:   "s1",
		Date: "2024-06-10",
		Note: "heavy",
		Sets: []store.Set{{ExerciseID: "sq", Weight: 100, Reps: 5}},
	}}

	out := r.View()
	assert.Contains(t, out, "June 2024")
	assert.Contains(t, out, "Mon 10")
	assert.Contains(t, out, "Monday, Jun 10")
	assert.Contains(t, out, "Rest day")
	assert.Contains(t, out, "Session 1")
	assert.Contains(t, out, "heavy")
	assert.Contains(t, out, "Squat  100 kg x 5")
	assert.Equal(t, r.Height, lipgloss.Height(out))

	r.Units = store.UnitLb
	assert.Contains(t, r.renderDayLog(), "lb x 5")
}

func TestRenderWeekScrollsToCursorSession(t *testing.T) {
	r := newTestRenderer(t)
	loadStrip(t, r)

	r.Exercises = []store.Exercise{{ID: "sq", Name: "Squat"}}
	for i := 0; i < 4; i++ {
		r.DaySessions = append(r.DaySessions, store.Session{
			ID:   fmt.Sprintf("s%d", i+1),
			Date: "2024-06-10",
			Sets: []store.Set{{ExerciseID: "sq", Weight: 100, Reps: 5}, {ExerciseID: "sq", Weight: 100, Reps: 5}},
		})
	}
	r.DayViewport = viewport.New(80, 3)
	r.ViewportReady = true

	out := r.renderWeek()
	assert.Contains(t, out, "Session 1")
	assert.NotContains(t, out, "Session 4")

	r.SessionCursor = 3
	out = r.renderWeek()
	assert.Contains(t, out, "Session 4")
	assert.NotContains(t, out, "Session 1")
	assert.Equal(t, 7, r.DayViewport.YOffset)

	r.SessionCursor = 0
	r.renderWeek()
	assert.Equal(t, 0, r.DayViewport.YOffset)
}

func TestRenderWeekEmptyDay(t *testing.T) {
	r := newTestRenderer(t)
	loadStrip(t, r)

	assert.Contains(t, r.View(), "No sessions. Press a to log a set.")
}

func TestPlannedLine(t *testing.T) {
	r := newTestRenderer(t)
	r.Select(testNow)
	r.Routines = []store.Routine{{ID: "legs", Name: "Leg day"}}
	r.ActivePlan = &store.Plan{Name: "Weekly plan", Active: true, Days: map[string]string{"1": "legs"}}

	assert.Contains(t, r.renderPlannedLine(), "Planned: Leg day")

	r.Select(testNow.AddDate(0, 0, 1))
	assert.Contains(t, r.renderPlannedLine(), "Rest day")
}

func TestRenderLibrary(t *testing.T) {
	r := newTestRenderer(t)
	assert.Contains(t, r.renderLibrary(10), "No exercises")

	r.Exercises = []store.Exercise{
		{ID: "a", Name: "Bench", MuscleGroup: "chest"},
		{ID: "b", Name: "Squat", MuscleGroup: "legs"},
	}
	out := r.renderLibrary(10)
	assert.Contains(t, out, "Exercises (2)")
	assert.Contains(t, out, "Bench")
	assert.Contains(t, out, "chest")
	assert.Contains(t, out, "Squat")
}

func TestRenderRoutines(t *testing.T) {
	r := newTestRenderer(t)
	r.Exercises = []store.Exercise{{ID: "sq", Name: "Squat"}}
	r.Routines = []store.Routine{{ID: "legs", Name: "Leg day", ExerciseIDs: []string{"sq", "gone"}}}

	out := r.renderRoutines(10)
	assert.Contains(t, out, "Leg day")
	assert.Contains(t, out, "2 exercises: Squat")
}

func TestRenderPlan(t *testing.T) {
	r := newTestRenderer(t)

	out := r.renderPlan(20)
	assert.Contains(t, out, "not set")
	assert.Equal(t, 7, strings.Count(out, "none"))

	r.Routines = []store.Routine{{ID: "legs", Name: "Leg day"}}
	r.ActivePlan = &store.Plan{Name: "Weekly plan", Active: true, Days: map[string]string{"3": "legs"}}
	out = r.renderPlan(20)
	assert.Contains(t, out, "active")
	assert.Equal(t, 6, strings.Count(out, "none"))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[1], "Monday")
	assert.Contains(t, lines[3], "Wednesday")
	assert.Contains(t, lines[3], "Leg day")
}

func TestRenderTimer(t *testing.T) {
	r := newTestRenderer(t)

	out := r.renderTimer(30)
	assert.Contains(t, out, "REST")
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "target 01:30")
	assert.Contains(t, out, "Nothing planned today.")

	r.Exercises = []store.Exercise{{ID: "sq", Name: "Squat"}}
	r.Routines = []store.Routine{{ID: "legs", Name: "Leg day", ExerciseIDs: []string{"sq"}}}
	r.ActivePlan = &store.Plan{Active: true, Days: map[string]string{"1": "legs"}}
	out = r.renderTimer(30)
	assert.Contains(t, out, "Today: Leg day")
	assert.Contains(t, out, "Squat")

	assert.LessOrEqual(t, lipgloss.Height(r.renderTimer(5)), 5)
}

func TestSetFormDialog(t *testing.T) {
	r := newTestRenderer(t)
	r.Exercises = []store.Exercise{{ID: "sq", Name: "Squat"}, {ID: "sp", Name: "Split squat"}}
	r.SetForm = state.NewSetForm(testNow, store.UnitLb, "s")
	r.CurrentView = state.ViewSetForm

	out := r.View()
	assert.Contains(t, out, "Log set on Mon Jun 10")
	assert.Contains(t, out, "Weight (lb)")
	assert.Contains(t, out, "Split squat, Squat")

	r.SetForm.Exercise.SetValue("Front")
	assert.Contains(t, r.renderSetForm(), "new exercise")

	r.StatusMsg = "invalid reps \"x\""
	assert.Contains(t, r.renderSetForm(), "invalid reps")
}

func TestPromptDialog(t *testing.T) {
	r := newTestRenderer(t)
	r.Prompt = state.NewPrompt(state.PromptExercise, "New exercise", "Name / muscle group")
	r.CurrentView = state.ViewPrompt

	out := r.View()
	assert.Contains(t, out, "New exercise")
	assert.Contains(t, out, "esc: cancel")
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		cursor, n, height int
		start, end        int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 5, 0, 5},
		{10, 20, 5, 8, 13},
		{19, 20, 5, 15, 20},
		{0, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		start, end := listWindow(tt.cursor, tt.n, tt.height)
		assert.Equal(t, tt.start, start, "cursor %d", tt.cursor)
		assert.Equal(t, tt.end, end, "cursor %d", tt.cursor)
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", progressBar(0.5, 10))
	assert.Equal(t, "░░░░", progressBar(-1, 4))
	assert.Equal(t, "████", progressBar(2, 4))
}
