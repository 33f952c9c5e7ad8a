package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// renderWeek draws the strip, the planned routine of the selected day and
// the day log below it. The log goes through the viewport sized by the
// handler once the window size is known.
func (r *Renderer) renderWeek() string {
	stripView := lipgloss.NewStyle().PaddingLeft(state.StripLeft).Render(r.Strip.View())
	planned := lipgloss.NewStyle().PaddingLeft(state.StripLeft).Render(r.renderPlannedLine())

	log := r.renderDayLog()
	if r.ViewportReady {
		r.DayViewport.SetContent(log)
		r.keepSessionVisible()
		log = r.DayViewport.View()
	}
	log = lipgloss.NewStyle().PaddingLeft(state.StripLeft).Render(log)

	return lipgloss.JoinVertical(lipgloss.Left, stripView, planned, "", log)
}

func (r *Renderer) renderPlannedLine() string {
	if r.Selected.IsZero() {
		return styles.Muted.Render("Loading week...")
	}
	title := styles.Title.Render(r.Selected.Format("Monday, Jan 2"))

	routineID := r.ActivePlan.RoutineFor(calendar.WeekdayIndex(r.Selected))
	if routineID == "" {
		return title + "  " + styles.Muted.Render("Rest day")
	}
	name := r.RoutineName(routineID)
	if name == "" {
		name = "unknown routine"
	}
	return title + "  " + styles.PlannedRoutine.Render("Planned: "+name)
}

// renderDayLog renders every session of the selected day with its sets.
func (r *Renderer) renderDayLog() string {
	if len(r.DaySessions) == 0 {
		return styles.Muted.Render("No sessions. Press a to log a set.")
	}

	names := utils.ExerciseNames(r.Exercises)
	var lines []string
	for i, sess := range r.DaySessions {
		header := fmt.Sprintf("Session %d", i+1)
		if sess.RoutineID != "" {
			if name := r.RoutineName(sess.RoutineID); name != "" {
				header += " · " + name
			}
		}
		marker := "  "
		if i == r.SessionCursor {
			marker = styles.StatusBarKey.Render("▸ ")
		}
		line := marker + styles.SessionHeader.Render(header) + " " + styles.Volume.Render(store.FormatWeight(sess.Volume(), r.Units))
		lines = append(lines, line)
		if sess.Note != "" {
			lines = append(lines, "    "+styles.Muted.Render(sess.Note))
		}
		for _, set := range sess.Sets {
			lines = append(lines, styles.SetLine.Render(utils.SetSummary(set, names, r.Units)))
		}
	}
	return strings.Join(lines, "\n")
}

// keepSessionVisible scrolls the day log so the cursor session header is shown.
func (r *Renderer) keepSessionVisible() {
	row := 0
	for i := 0; i < r.SessionCursor && i < len(r.DaySessions); i++ {
		row += 1 + len(r.DaySessions[i].Sets)
		if r.DaySessions[i].Note != "" {
			row++
		}
	}
	vp := &r.DayViewport
	if row < vp.YOffset {
		vp.SetYOffset(row)
	} else if row >= vp.YOffset+vp.Height {
		vp.SetYOffset(row - vp.Height + 1)
	}
}
