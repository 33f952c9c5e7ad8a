// Package calendar provides the date arithmetic shared by the week strip,
// the store and the day log. All functions work on local calendar days.
package calendar

import "time"

// KeyLayout is the canonical date key format used to join dates against stored sessions.
const KeyLayout = "2006-01-02"

// DaysPerWeek is the number of days shown on one strip page.
const DaysPerWeek = 7

// Midnight strips the time of day, keeping the date's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday on or before t at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := Midnight(t)
	return AddDays(d, -(WeekdayIndex(d) - 1))
}

// AddDays returns a new date offset by n calendar days. n may be negative.
// AddDate is used instead of Add so DST transitions never shift the day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DateKey formats t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key in the local time zone.
func ParseKey(key string) (time.Time, error) {
	return time.ParseInLocation(KeyLayout, key, time.Local)
}

// WeekdayIndex returns 1 for Monday through 7 for Sunday.
func WeekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Today returns the current day at midnight per clock, or the wall clock
// when clock is nil.
func Today(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return Midnight(clock())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsTodayOrFuture reports whether t is on or after today.
func IsTodayOrFuture(t, today time.Time) bool {
	return !Midnight(t).Before(Midnight(today))
}

// Label returns the short display label for a day, e.g. "Mon 10".
func Label(t time.Time) string {
	return t.Format("Mon") + " " + t.Format("2")
}
