package ui

import (
	"strings"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

const maxExerciseHints = 4

// renderSetForm renders the log set dialog.
func (r *Renderer) renderSetForm() string {
	f := r.SetForm
	if f == nil {
		return styles.Dialog.Render("Form not initialized")
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Log set on "+f.Date.Format("Mon Jan 2")) + "\n\n")

	label := func(i int, text string) string {
		if f.FocusIndex == i {
			return styles.InputLabelFocused.Render(text)
		}
		return styles.InputLabel.Render(text)
	}

	b.WriteString(label(state.SetFieldExercise, "Exercise") + "\n")
	b.WriteString(f.Exercise.View() + "\n")
	if f.FocusIndex == state.SetFieldExercise {
		if hint := r.exerciseHint(f.Exercise.Value()); hint != "" {
			b.WriteString(styles.Muted.Render(hint) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(label(state.SetFieldWeight, "Weight ("+f.Units+")") + "\n")
	b.WriteString(f.Weight.View() + "\n\n")

	b.WriteString(label(state.SetFieldReps, "Reps") + "\n")
	b.WriteString(f.Reps.View() + "\n")

	if r.StatusMsg != "" {
		b.WriteString("\n" + styles.StatusBarError.Render(r.StatusMsg) + "\n")
	}

	b.WriteString("\n" + styles.HelpDesc.Render("tab: next field • enter: save • esc: cancel"))

	return styles.Dialog.Render(b.String())
}

// exerciseHint lists library exercises matching the typed prefix. A new name
// is created on save.
func (r *Renderer) exerciseHint(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return ""
	}
	names := make([]string, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		names = append(names, e.Name)
	}
	matches := utils.MatchNames(names, prefix)
	if len(matches) == 0 {
		return "new exercise"
	}
	if len(matches) > maxExerciseHints {
		matches = append(matches[:maxExerciseHints], "…")
	}
	return strings.Join(matches, ", ")
}

// renderPrompt renders a single-line input dialog.
func (r *Renderer) renderPrompt() string {
	p := r.Prompt
	if p == nil {
		return styles.Dialog.Render("Prompt not initialized")
	}

	var b strings.Builder
	title := p.Title
	if p.Kind == state.PromptNote && !r.Selected.IsZero() {
		title += " · " + calendar.Label(r.Selected)
	}
	b.WriteString(styles.DialogTitle.Render(title) + "\n\n")
	b.WriteString(p.Input.View() + "\n")

	if r.StatusMsg != "" {
		b.WriteString("\n" + styles.StatusBarError.Render(r.StatusMsg) + "\n")
	}

	b.WriteString("\n" + styles.HelpDesc.Render("enter: save • esc: cancel"))

	return styles.Dialog.Render(b.String())
}
