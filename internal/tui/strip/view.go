package strip

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

const (
	navWidth = 2

	// Height is the number of lines View returns.
	Height = 3
	// CellRow is the first clickable line of the view; the marker line follows it.
	CellRow = 1
)

// Width is the number of columns View occupies.
func (e *Engine) Width() int {
	return e.PageWidth() + 2*navWidth
}

// View draws the one-page viewport cut out of the three concatenated pages.
func (e *Engine) View() string {
	if !e.loaded {
		return lipgloss.NewStyle().Width(e.Width()).Render(styles.Subtitle.Render("Loading week..."))
	}

	pw := e.PageWidth()
	cw := e.opts.CellWidth
	from, to := e.offset, e.offset+pw

	var labels, marks strings.Builder
	labels.WriteString(styles.StripNav.Render("‹ "))
	marks.WriteString(strings.Repeat(" ", navWidth))
	for i, p := range e.Pages() {
		for j, c := range p.Cells {
			start := (i*calendar.DaysPerWeek + j) * cw
			lo, hi := max(start, from), min(start+cw, to)
			if lo >= hi {
				continue
			}
			style := cellStyle(c.Kind())
			labels.WriteString(style.Render(cutColumns(centerText(c.Label, cw), lo-start, hi-start)))
			marks.WriteString(style.Render(cutColumns(centerText(c.Marker(), cw), lo-start, hi-start)))
		}
	}
	labels.WriteString(styles.StripNav.Render(" ›"))
	marks.WriteString(strings.Repeat(" ", navWidth))

	title := ""
	if d, ok := e.DateAt(e.offset + pw/2); ok {
		title = d.Format("January 2006")
	}
	header := styles.StripHeader.Width(e.Width()).Render(title)

	return lipgloss.JoinVertical(lipgloss.Left, header, labels.String(), marks.String())
}

// Click maps a column of the view to a nav arrow or a day cell.
func (e *Engine) Click(x int) tea.Cmd {
	pw := e.PageWidth()
	switch {
	case x < 0 || x >= e.Width():
		return nil
	case x < navWidth:
		return e.HandleNav(-1)
	case x >= navWidth+pw:
		return e.HandleNav(+1)
	}
	date, ok := e.DateAt(e.offset + x - navWidth)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return DaySelectedMsg{Date: date}
	}
}

func cellStyle(k Kind) lipgloss.Style {
	switch k {
	case KindSelected:
		return styles.StripDaySelected
	case KindSession:
		return styles.StripDaySession
	case KindPlanned:
		return styles.StripDayPlanned
	case KindToday:
		return styles.StripDayToday
	default:
		return styles.StripDay
	}
}

// centerText fits s into exactly w columns.
func centerText(s string, w int) string {
	s = runewidth.Truncate(s, w, "")
	pad := w - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// cutColumns returns the columns [from, to) of s. A wide rune split by either
// edge is replaced by spaces.
func cutColumns(s string, from, to int) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		end := col + w
		switch {
		case end <= from || col >= to:
		case col >= from && end <= to:
			b.WriteRune(r)
		default:
			b.WriteString(strings.Repeat(" ", min(end, to)-max(col, from)))
		}
		col = end
	}
	return b.String()
}
