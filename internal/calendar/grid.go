package calendar

import "time"

// WeekdayHeaders are the column labels of a Sunday-first grid.
var WeekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one slot of a month grid. Day is 0 for padding cells.
type Cell struct {
	Day int
}

// Blank reports whether the cell is padding before or after the month.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid lays out a month in a Sunday-first grid: leading blank cells up to
// the weekday of the 1st, the days themselves, then trailing blanks to fill
// the last week.
func Grid(month time.Month, year int) []Cell {
	offset := FirstWeekdayOffset(month, year)
	days := DaysInMonth(month, year)

	total := offset + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]Cell, total)
	for d := 1; d <= days; d++ {
		cells[offset+d-1] = Cell{Day: d}
	}
	return cells
}

// Weeks splits the month grid into rows of seven cells.
func Weeks(month time.Month, year int) [][]Cell {
	cells := Grid(month, year)
	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
