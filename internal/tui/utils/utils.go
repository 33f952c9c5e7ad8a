// Package utils provides shared utility functions for the TUI.
package utils

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/store"
)

// TruncateString truncates a string to a given width and adds an ellipsis if truncated.
func TruncateString(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	if width <= 1 {
		return "…"
	}

	res := s
	for lipgloss.Width(res+"…") > width && len(res) > 0 {
		_, size := utf8.DecodeLastRuneInString(res)
		res = res[:len(res)-size]
	}
	return res + "…"
}

// ExerciseNames indexes exercise names by ID.
func ExerciseNames(exercises []store.Exercise) map[string]string {
	names := make(map[string]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
	}
	return names
}

// NameOr returns names[id], or a shortened ID when the exercise is unknown.
func NameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return "#" + id
}

// SetSummary renders one set, e.g. "Bench Press  80 kg x 5".
func SetSummary(set store.Set, names map[string]string, units string) string {
	return fmt.Sprintf("%s  %s x %d", NameOr(names, set.ExerciseID), store.FormatWeight(set.Weight, units), set.Reps)
}

// FormatDayLog renders the sessions of one day as plain text, one set per line.
// It is what yy copies to the clipboard.
func FormatDayLog(date string, sessions []store.Session, names map[string]string, units string) string {
	var b strings.Builder
	b.WriteString(date)
	b.WriteString("\n")
	if len(sessions) == 0 {
		b.WriteString("  no sessions\n")
		return b.String()
	}
	for i, sess := range sessions {
		header := fmt.Sprintf("  Session %d", i+1)
		if sess.Note != "" {
			header += " (" + sess.Note + ")"
		}
		b.WriteString(header + "  " + store.FormatWeight(sess.Volume(), units) + "\n")
		for _, set := range sess.Sets {
			b.WriteString("    " + SetSummary(set, names, units) + "\n")
		}
	}
	return b.String()
}

// MatchNames returns the names that start with prefix, case-insensitively, sorted.
func MatchNames(names []string, prefix string) []string {
	p := strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, n := range names {
		if p == "" || strings.HasPrefix(strings.ToLower(n), p) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
