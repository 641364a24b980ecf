package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/calendar"
)

var calendarCmd = LeafCommand{
	Use:   "calendar",
	Short: "Print a month grid, or the month cards of a year",
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month to print (1-12 or name); omit for all twelve"},
		{Name: "year", Usage: "year (default: current year)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")
		return runCalendar(cmd, monthFlag, yearFlag, calendar.SystemClock)
	},
}.Build()

func runCalendar(cmd *cobra.Command, monthFlag, yearFlag string, nowFn calendar.Clock) error {
	now := nowFn()
	year, err := resolveYear(yearFlag, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if monthFlag == "" {
		printMonthCards(w, year)
		return nil
	}

	month, err := resolveMonth(monthFlag)
	if err != nil {
		return err
	}
	printMonthGrid(w, month, year, now)
	return nil
}

// printMonthCards prints the twelve months of year, three per line.
func printMonthCards(w io.Writer, year int) {
	_, _ = fmt.Fprintf(w, "--- Calendar %d ---\n\n", year)
	for i, month := range calendar.Months() {
		_, _ = fmt.Fprint(w, padRight(monthCard(month, year), monthColWidth))
		if i%monthColumns == monthColumns-1 {
			_, _ = fmt.Fprintln(w)
		} else {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
}

// printMonthGrid prints a plain Sunday-first grid with today marked "*".
func printMonthGrid(w io.Writer, month time.Month, year int, now time.Time) {
	_, _ = fmt.Fprintf(w, "%s %d\n", month, year)

	_, _ = fmt.Fprintln(w, strings.Join(calendar.WeekdayHeaders[:], " "))
	for _, week := range calendar.Weeks(month, year) {
		cells := make([]string, len(week))
		for i, c := range week {
			switch {
			case c.Blank():
				cells[i] = "   "
			case calendar.IsToday(now, year, month, c.Day):
				cells[i] = fmt.Sprintf("%2d*", c.Day)
			default:
				cells[i] = fmt.Sprintf("%2d ", c.Day)
			}
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}
