package screen

import (
	"github.com/sss/roster/internal/roster"
)

// State is the current screen. It is one of Picking, MonthPicking,
// DayEditing or DayDetail; no other implementations exist.
type State interface {
	Name() string
	isState()
}

// Picking shows the worker catalog. Nothing is selected yet.
type Picking struct{}

// MonthPicking shows the month cards for the chosen worker.
type MonthPicking struct {
	Worker roster.Worker
}

// DayEditing shows the month grid, wage and totals of a Roster Context.
type DayEditing struct {
	Roster roster.Context
}

// Draft is the unsaved content of the day-detail form.
type Draft struct {
	AmountPaid string
	Absent     bool
}

// DayDetail is the day form opened on top of DayEditing.
type DayDetail struct {
	Roster roster.Context
	Day    int
	Draft  Draft
}

func (Picking) Name() string      { return "picking" }
func (MonthPicking) Name() string { return "month-picking" }
func (DayEditing) Name() string   { return "day-editing" }
func (DayDetail) Name() string    { return "day-detail" }

func (Picking) isState()      {}
func (MonthPicking) isState() {}
func (DayEditing) isState()   {}
func (DayDetail) isState()    {}

// Start returns the initial state.
func Start() State {
	return Picking{}
}

// Roster returns the Roster Context of s, if s has one.
func Roster(s State) (roster.Context, bool) {
	switch s := s.(type) {
	case DayEditing:
		return s.Roster, true
	case DayDetail:
		return s.Roster, true
	}
	return roster.Context{}, false
}

// Worker returns the selected worker of s, if any.
func Worker(s State) (roster.Worker, bool) {
	switch s := s.(type) {
	case MonthPicking:
		return s.Worker, true
	case DayEditing:
		return s.Roster.Worker, true
	case DayDetail:
		return s.Roster.Worker, true
	}
	return roster.Worker{}, false
}
