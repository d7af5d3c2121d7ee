package engine

import (
	"fmt"
	"time"
)

// Clock abstracts the wall clock so rollover and redemption-window logic
// stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock is a test clock pinned to a settable instant.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the fixed clock forward.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// ISOWeekID renders the ISO week identifier for a time, e.g. "2026-W35".
func ISOWeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ISOWeekIndex returns the ISO week number, used to rotate the boss
// catalog.
func ISOWeekIndex(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight on the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// StartOfMonth returns local midnight on the first of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from a to b (positive when b is
// later). Comparison is by calendar day, not elapsed 24h periods.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}
