package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// listWindow returns the [start, end) range of n items to show in height rows
// so that cursor stays visible.
func listWindow(cursor, n, height int) (int, int) {
	if height <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	start = max(min(start, n-height), 0)
	return start, start + height
}

// progressBar renders a filled/empty bar of width cells for p in [0, 1].
func progressBar(p float64, width int) string {
	if width <= 0 {
		return ""
	}
	p = min(max(p, 0), 1)
	filled := int(float64(width) * p)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
