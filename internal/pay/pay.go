package pay

import (
	"fmt"

	"github.com/sss/roster/internal/roster"
)

// Totals are the derived figures for one Roster Context.
type Totals struct {
	Wage            int
	DaysInMonth     int
	Possible        int
	Paid            int
	PaidDays        int
	AbsentDays      int
	AbsentDeduction int
	UnmarkedDays    int
	Remaining       int
}

// Summarize computes the totals of rc. It is recomputed on every call.
//
// An absent day is charged one wage even if it also carries a paid amount;
// Remaining is not clamped and goes negative on over-payment.
func Summarize(rc roster.Context) Totals {
	wage := roster.ParseAmount(rc.Wage)
	days := rc.DaysInMonth()

	t := Totals{
		Wage:        wage,
		DaysInMonth: days,
		Possible:    wage * days,
	}

	for _, e := range rc.Entries.All() {
		t.Paid += roster.ParseAmount(e.AmountPaid)
		if e.Absent {
			t.AbsentDays++
		} else {
			t.PaidDays++
		}
	}

	t.AbsentDeduction = t.AbsentDays * wage
	t.UnmarkedDays = days - rc.Entries.Len()
	t.Remaining = t.Possible - t.Paid - t.AbsentDeduction
	return t
}

// FormatAmount renders n with the currency symbol, e.g. "₹500" or "-₹200".
func FormatAmount(symbol string, n int) string {
	if n < 0 {
		return fmt.Sprintf("-%s%d", symbol, -n)
	}
	return fmt.Sprintf("%s%d", symbol, n)
}
