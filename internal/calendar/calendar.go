package calendar

import "time"

// Clock returns the current time. Commands and the UI take one so tests can
// pin "today".
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
// February has 29 days in leap years.
func DaysInMonth(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstWeekdayOffset returns the weekday index (Sunday = 0) of the first day
// of the month. It is the number of blank cells before day 1 in a
// Sunday-first grid.
func FirstWeekdayOffset(month time.Month, year int) int {
	return int(Weekday(year, month, 1))
}

// IsToday reports whether year/month/day is the calendar date of now,
// evaluated in now's own location.
func IsToday(now time.Time, year int, month time.Month, day int) bool {
	y, m, d := now.Date()
	return y == year && m == month && d == day
}

// Weekday returns the weekday of the given day.
func Weekday(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}
