package roster

import "sort"

// DayEntry is one day's recorded outcome. AmountPaid keeps the text exactly
// as typed; it is parsed only when totals are computed.
type DayEntry struct {
	Day        int
	AmountPaid string
	Absent     bool
}

// Entries maps day-of-month to its DayEntry. The zero value is empty and
// ready to use. Entries is never mutated in place: With returns a new value,
// so a Context handed to a view keeps seeing the entries it was built with.
type Entries struct {
	byDay map[int]DayEntry
}

// With returns a copy of es with e inserted, replacing any entry for the
// same day.
func (es Entries) With(e DayEntry) Entries {
	next := make(map[int]DayEntry, len(es.byDay)+1)
	for d, existing := range es.byDay {
		next[d] = existing
	}
	next[e.Day] = e
	return Entries{byDay: next}
}

// Get returns the entry for day, if one was recorded.
func (es Entries) Get(day int) (DayEntry, bool) {
	e, ok := es.byDay[day]
	return e, ok
}

// Len returns the number of recorded days.
func (es Entries) Len() int {
	return len(es.byDay)
}

// Days returns the recorded days in ascending order.
func (es Entries) Days() []int {
	days := make([]int, 0, len(es.byDay))
	for d := range es.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// All returns the entries ordered by day.
func (es Entries) All() []DayEntry {
	out := make([]DayEntry, 0, len(es.byDay))
	for _, d := range es.Days() {
		out = append(out, es.byDay[d])
	}
	return out
}
