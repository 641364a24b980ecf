package roster

import (
	"time"

	"github.com/sss/roster/internal/calendar"
)

// Context is the Roster Context: one worker, one month, the daily wage as
// typed, and the day entries recorded so far. Methods return updated copies.
type Context struct {
	Worker  Worker
	Month   time.Month
	Year    int
	Wage    string
	Entries Entries
}

// NewContext starts an empty roster for worker in the given month.
func NewContext(w Worker, month time.Month, year int) Context {
	return Context{
		Worker: w,
		Month:  month,
		Year:   year,
	}
}

// DaysInMonth returns the number of days of the context's month.
func (c Context) DaysInMonth() int {
	return calendar.DaysInMonth(c.Month, c.Year)
}

// SetEntry records the outcome for day, overwriting any previous entry.
// The day is not range-checked here; callers only pass days of the grid.
func (c Context) SetEntry(day int, amountPaid string, absent bool) Context {
	c.Entries = c.Entries.With(DayEntry{
		Day:        day,
		AmountPaid: amountPaid,
		Absent:     absent,
	})
	return c
}

// Entry returns the entry recorded for day.
func (c Context) Entry(day int) (DayEntry, bool) {
	return c.Entries.Get(day)
}

// WithWage replaces the daily wage. Existing entries are kept as they are.
func (c Context) WithWage(wage string) Context {
	c.Wage = wage
	return c
}

// Date returns the calendar date of day in loc.
func (c Context) Date(day int, loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, day, 0, 0, 0, 0, loc)
}
