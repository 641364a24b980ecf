package screen

import (
	"errors"
	"fmt"
	"time"

	"github.com/sss/roster/internal/roster"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrDayOutOfRange     = errors.New("day out of range")
)

func invalid(s State, action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, s.Name())
}

// SelectWorker picks a worker from the catalog. Picking again while the month
// cards are shown replaces the worker.
func SelectWorker(s State, w roster.Worker) (State, error) {
	switch s.(type) {
	case Picking, MonthPicking:
		return MonthPicking{Worker: w}, nil
	}
	return s, invalid(s, "select worker")
}

// SelectMonth opens a fresh Roster Context for the chosen worker: no entries
// and an empty wage.
func SelectMonth(s State, month time.Month, year int) (State, error) {
	mp, ok := s.(MonthPicking)
	if !ok {
		return s, invalid(s, "select month")
	}
	if month < time.January || month > time.December {
		return s, fmt.Errorf("%w: month %d", ErrInvalidTransition, month)
	}
	return DayEditing{Roster: roster.NewContext(mp.Worker, month, year)}, nil
}

// SetWage replaces the daily wage. Recorded days are left alone.
func SetWage(s State, wage string) (State, error) {
	de, ok := s.(DayEditing)
	if !ok {
		return s, invalid(s, "set wage")
	}
	de.Roster = de.Roster.WithWage(wage)
	return de, nil
}

// OpenDay opens the day form. The draft starts from the day's recorded entry,
// or empty when the day is unmarked.
func OpenDay(s State, day int) (State, error) {
	de, ok := s.(DayEditing)
	if !ok {
		return s, invalid(s, "open day")
	}
	if n := de.Roster.DaysInMonth(); day < 1 || day > n {
		return s, fmt.Errorf("%w: %d not in 1-%d for %s %d", ErrDayOutOfRange, day, n, de.Roster.Month, de.Roster.Year)
	}

	var draft Draft
	if e, ok := de.Roster.Entry(day); ok {
		draft = Draft{AmountPaid: e.AmountPaid, Absent: e.Absent}
	}
	return DayDetail{Roster: de.Roster, Day: day, Draft: draft}, nil
}

// EditDraft replaces the form contents without touching the roster.
func EditDraft(s State, amountPaid string, absent bool) (State, error) {
	dd, ok := s.(DayDetail)
	if !ok {
		return s, invalid(s, "edit draft")
	}
	dd.Draft = Draft{AmountPaid: amountPaid, Absent: absent}
	return dd, nil
}

// Submit writes the draft as the day's entry and returns to the month grid.
func Submit(s State) (State, error) {
	dd, ok := s.(DayDetail)
	if !ok {
		return s, invalid(s, "submit")
	}
	rc := dd.Roster.SetEntry(dd.Day, dd.Draft.AmountPaid, dd.Draft.Absent)
	return DayEditing{Roster: rc}, nil
}

// Back moves one screen up. Leaving the day form discards the draft; leaving
// the month grid drops the whole Roster Context but keeps the worker.
func Back(s State) State {
	switch s := s.(type) {
	case DayDetail:
		return DayEditing{Roster: s.Roster}
	case DayEditing:
		return MonthPicking{Worker: s.Roster.Worker}
	case MonthPicking:
		return Picking{}
	}
	return Picking{}
}
