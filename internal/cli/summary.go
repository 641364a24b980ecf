package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/roster"
)

var summaryCmd = LeafCommand{
	Use:   "summary",
	Short: "Compute a worker's month totals from flags",
	Long: `Builds a month from flags and prints its totals.

  roster summary --month 4 --wage 500 --paid 1=500 --paid 2=250 --absent 3`,
	StrFlags: []StringFlag{
		{Name: "worker", Usage: "worker ID or label (default: first catalog worker)"},
		{Name: "month", Usage: "month (1-12 or name)"},
		{Name: "year", Usage: "year (default: current year)"},
		{Name: "wage", Usage: "daily wage"},
		{Name: "catalog", Usage: "YAML worker catalog (default: built-in sample workers)"},
	},
	ArrayFlags: []StringArrayFlag{
		{Name: "paid", Usage: "amount paid on a day, as DAY=AMOUNT (repeatable)"},
		{Name: "absent", Usage: "day the worker was absent (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		app, err := loadAppContext(catalogFlag)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		var opts summaryOptions
		opts.worker, _ = cmd.Flags().GetString("worker")
		opts.month, _ = cmd.Flags().GetString("month")
		opts.year, _ = cmd.Flags().GetString("year")
		opts.wage, _ = cmd.Flags().GetString("wage")
		opts.paid, _ = cmd.Flags().GetStringArray("paid")
		opts.absent, _ = cmd.Flags().GetStringArray("absent")
		return runSummary(cmd, app, opts, time.Now)
	},
}.Build()

type summaryOptions struct {
	worker string
	month  string
	year   string
	wage   string
	paid   []string
	absent []string
}

func runSummary(cmd *cobra.Command, app *appContext, opts summaryOptions, nowFn func() time.Time) error {
	rc, err := buildSummaryRoster(app.catalog, opts, nowFn())
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), rc, app.cfg.Currency)
	return nil
}

// buildSummaryRoster turns summary flags into a Roster Context. A day given
// both --paid and --absent is recorded as absent with that amount.
func buildSummaryRoster(catalog roster.Catalog, opts summaryOptions, now time.Time) (roster.Context, error) {
	if opts.month == "" {
		return roster.Context{}, fmt.Errorf("--month is required")
	}

	w := catalog[0]
	if opts.worker != "" {
		var err error
		if w, err = catalog.Find(opts.worker); err != nil {
			return roster.Context{}, err
		}
	}

	month, err := resolveMonth(opts.month)
	if err != nil {
		return roster.Context{}, err
	}
	year, err := resolveYear(opts.year, now)
	if err != nil {
		return roster.Context{}, err
	}

	rc := roster.NewContext(w, month, year).WithWage(opts.wage)

	for _, p := range opts.paid {
		dayStr, amount, ok := strings.Cut(p, "=")
		if !ok {
			return roster.Context{}, fmt.Errorf("invalid --paid value %q (expected DAY=AMOUNT)", p)
		}
		day, err := resolveDay(strings.TrimSpace(dayStr), month, year)
		if err != nil {
			return roster.Context{}, err
		}
		e, _ := rc.Entry(day)
		rc = rc.SetEntry(day, strings.TrimSpace(amount), e.Absent)
	}

	for _, a := range opts.absent {
		day, err := resolveDay(strings.TrimSpace(a), month, year)
		if err != nil {
			return roster.Context{}, err
		}
		e, _ := rc.Entry(day)
		rc = rc.SetEntry(day, e.AmountPaid, true)
	}

	return rc, nil
}

// printSummary writes the totals of rc as aligned label/value lines.
func printSummary(w io.Writer, rc roster.Context, currency string) {
	t := pay.Summarize(rc)

	wage := rc.Wage
	if wage == "" {
		wage = "(not set)"
	} else {
		wage = pay.FormatAmount(currency, t.Wage)
	}

	lines := [][2]string{
		{"Worker", rc.Worker.Label},
		{"Month", fmt.Sprintf("%s %d (%d days)", rc.Month, rc.Year, t.DaysInMonth)},
		{"Amount per day", wage},
		{"Recorded days", fmt.Sprintf("%d paid, %d absent, %d unmarked", t.PaidDays, t.AbsentDays, t.UnmarkedDays)},
		{"Month Total", pay.FormatAmount(currency, t.Possible)},
		{"Paid", pay.FormatAmount(currency, t.Paid)},
		{"Absent Days", fmt.Sprintf("%d (%s)", t.AbsentDays, pay.FormatAmount(currency, -t.AbsentDeduction))},
		{"Remaining", pay.FormatAmount(currency, t.Remaining)},
	}
	for _, l := range lines {
		_, _ = fmt.Fprintf(w, "%-16s%s\n", l[0]+":", l[1])
	}
}
