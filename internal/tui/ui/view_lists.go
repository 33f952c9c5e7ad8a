package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// listRow renders one list row with an optional detail column.
func (r *Renderer) listRow(name, detail string, selected bool) string {
	width := max(r.Width-4, 10)
	nameWidth := min(lipgloss.Width(name), width)
	if detail != "" {
		nameWidth = min(nameWidth, width*2/3)
	}
	row := padRight(utils.TruncateString(name, nameWidth), nameWidth)
	if detail != "" {
		row += styles.ListDetail.Render(utils.TruncateString(detail, max(width-nameWidth-1, 1)))
	}
	if selected {
		return styles.ListSelected.Render(row)
	}
	return styles.ListItem.Render(row)
}

func (r *Renderer) renderLibrary(height int) string {
	header := styles.SectionHeader.Render(fmt.Sprintf("Exercises (%d)", len(r.Exercises)))
	if len(r.Exercises) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render("  No exercises. Press a to add one."))
	}

	rows := []string{header}
	start, end := listWindow(r.ExerciseCursor, len(r.Exercises), height-lipgloss.Height(header))
	for i := start; i < end; i++ {
		e := r.Exercises[i]
		rows = append(rows, r.listRow(e.Name, e.MuscleGroup, i == r.ExerciseCursor))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderRoutines(height int) string {
	header := styles.SectionHeader.Render(fmt.Sprintf("Routines (%d)", len(r.Routines)))
	if len(r.Routines) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render("  No routines. Press a to add one as \"Name: exercise, exercise\"."))
	}

	names := utils.ExerciseNames(r.Exercises)
	rows := []string{header}
	start, end := listWindow(r.RoutineCursor, len(r.Routines), height-lipgloss.Height(header))
	for i := start; i < end; i++ {
		rt := r.Routines[i]
		parts := make([]string, 0, len(rt.ExerciseIDs))
		for _, id := range rt.ExerciseIDs {
			parts = append(parts, utils.NameOr(names, id))
		}
		detail := fmt.Sprintf("%d exercises", len(rt.ExerciseIDs))
		if len(parts) > 0 {
			detail += ": " + strings.Join(parts, ", ")
		}
		rows = append(rows, r.listRow(rt.Name, detail, i == r.RoutineCursor))
	}
	return strings.Join(rows, "\n")
}

// renderPlan draws one row per weekday, Monday first.
func (r *Renderer) renderPlan(height int) string {
	var header string
	if r.ActivePlan == nil {
		header = styles.SectionHeader.Render("Weekly plan") + "  " + styles.Muted.Render("not set, press enter to assign a routine")
	} else {
		header = styles.SectionHeader.Render(r.ActivePlan.Name) + "  " + styles.ActiveBadge.Render("active")
	}

	rows := []string{header}
	monday := calendar.StartOfWeek(r.Now())
	for i := 0; i < calendar.DaysPerWeek; i++ {
		day := calendar.AddDays(monday, i).Weekday()
		name := "none"
		if id := r.ActivePlan.RoutineFor(i + 1); id != "" {
			name = r.RoutineName(id)
			if name == "" {
				name = "unknown routine"
			}
		}
		rows = append(rows, r.listRow(padRight(day.String(), 10)+name, "", i == r.PlanCursor))
	}
	if height < len(rows) {
		start, end := listWindow(r.PlanCursor+1, len(rows), height)
		rows = rows[start:end]
	}
	return strings.Join(rows, "\n")
}
