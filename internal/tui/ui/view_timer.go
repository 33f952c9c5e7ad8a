package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// renderTimer renders the rest timer tab.
func (r *Renderer) renderTimer(height int) string {
	width := max(r.Width-4, 20)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var content strings.Builder

	content.WriteString(styles.Title.Width(width).Align(lipgloss.Center).Render("REST") + "\n\n")

	rest := r.Rest
	clock := styles.TimerClock
	if rest.Remaining() == 0 {
		clock = styles.TimerDone
	}
	largeTime := components.RenderLargeTime(components.FormatDuration(rest.Remaining()))
	content.WriteString(clock.Width(width).Align(lipgloss.Center).Render(largeTime) + "\n")

	content.WriteString(center.Render(styles.TimerClock.Render(progressBar(rest.Progress(), width/2))) + "\n")

	status := "Paused"
	switch {
	case rest.Running():
		status = "Resting"
	case rest.Remaining() == 0:
		status = "Rest over"
	}
	info := fmt.Sprintf("%s · target %s", status, components.FormatDuration(rest.Target()))
	content.WriteString(styles.Subtitle.Width(width).Align(lipgloss.Center).Render(info) + "\n\n")

	content.WriteString(r.renderTodayRoutine(width) + "\n\n")

	hints := []string{"[Space] Start/Pause", "[r] Reset", "[+/-] Target"}
	content.WriteString(center.Render(styles.Muted.Render(strings.Join(hints, "  "))))

	return lipgloss.NewStyle().MaxHeight(height).Render(content.String())
}

// renderTodayRoutine shows the routine the active plan assigns to today.
func (r *Renderer) renderTodayRoutine(width int) string {
	box := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	id := r.ActivePlan.RoutineFor(calendar.WeekdayIndex(r.Now()))
	var routine string
	var exercises []string
	names := utils.ExerciseNames(r.Exercises)
	for _, rt := range r.Routines {
		if rt.ID != id {
			continue
		}
		routine = rt.Name
		for _, ex := range rt.ExerciseIDs {
			exercises = append(exercises, utils.NameOr(names, ex))
		}
	}

	if routine == "" {
		return box.BorderForeground(styles.Subtle).
			Align(lipgloss.Center).
			Render(styles.Muted.Render("Nothing planned today."))
	}

	detail := "no exercises"
	if len(exercises) > 0 {
		detail = strings.Join(exercises, " · ")
	}
	return box.BorderForeground(styles.Highlight).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.PlannedRoutine.Render("Today: "+routine),
		styles.Muted.Render(utils.TruncateString(detail, max(width-4, 1))),
	))
}
