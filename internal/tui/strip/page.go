package strip

import (
	"time"

	"github.com/hy4ri/workout-tui/internal/calendar"
)

// Kind is the single style a day cell is drawn with when several flags hold.
type Kind int

const (
	KindPlain Kind = iota
	KindToday
	KindPlanned
	KindSession
	KindSelected
)

// DayCell is one rendered date. Cells are rebuilt on every page paint.
type DayCell struct {
	Date       time.Time
	Key        string
	Label      string
	HasSession bool
	IsPlanned  bool
	IsSelected bool
	IsToday    bool
}

// Kind resolves flag precedence: selected, then session, then planned.
func (c DayCell) Kind() Kind {
	switch {
	case c.IsSelected:
		return KindSelected
	case c.HasSession:
		return KindSession
	case c.IsPlanned:
		return KindPlanned
	case c.IsToday:
		return KindToday
	default:
		return KindPlain
	}
}

// Marker is the glyph drawn under the label.
func (c DayCell) Marker() string {
	switch {
	case c.HasSession:
		return "●"
	case c.IsPlanned:
		return "○"
	case c.IsToday:
		return "·"
	default:
		return " "
	}
}

// Page is one of the three pooled week slots.
type Page struct {
	Start time.Time
	Cells []DayCell

	slot   int
	paints int
}

// Slot is the physical pool index of the page. It never changes.
func (p *Page) Slot() int { return p.slot }

// End returns the last day shown by the page.
func (p *Page) End() time.Time {
	return calendar.AddDays(p.Start, calendar.DaysPerWeek-1)
}

// Contains reports whether date falls inside the page's week.
func (p *Page) Contains(date time.Time) bool {
	d := calendar.Midnight(date)
	return !d.Before(p.Start) && !d.After(p.End())
}
