package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/calendar"
	"github.com/sss/roster/internal/log"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/roster"
	"github.com/sss/roster/internal/screen"
)

var promptCmd = LeafCommand{
	Use:   "prompt",
	Short: "Record a worker's month through guided prompts",
	StrFlags: []StringFlag{
		{Name: "export", Usage: "write the month after the session (supported: pdf)"},
		{Name: "catalog", Usage: "YAML worker catalog (default: built-in sample workers)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		exportFlag, _ := cmd.Flags().GetString("export")
		catalogFlag, _ := cmd.Flags().GetString("catalog")

		app, err := loadAppContext(catalogFlag)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		return runPromptSession(cmd, NewPromptKit(), app, calendar.SystemClock, exportFlag, dir)
	},
}.Build()

// promptSession walks the screen states with prompts instead of key presses.
type promptSession struct {
	kit      PromptKit
	state    screen.State
	currency string
	out      io.Writer
	log      *log.Logger
}

func runPromptSession(
	cmd *cobra.Command,
	kit PromptKit,
	app *appContext,
	nowFn calendar.Clock,
	exportFlag, dir string,
) error {
	if exportFlag != "" && exportFlag != "pdf" {
		return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
	}

	s := &promptSession{
		kit:      kit,
		state:    screen.Start(),
		currency: app.cfg.Currency,
		out:      cmd.OutOrStdout(),
		log:      app.log.WithComponent(log.ComponentPrompt),
	}

	if err := s.pickWorker(app.catalog); err != nil {
		return err
	}
	if err := s.pickMonth(nowFn().Year()); err != nil {
		return err
	}
	if err := s.enterWage(); err != nil {
		return err
	}
	if err := s.recordDays(); err != nil {
		return err
	}

	rc, _ := screen.Roster(s.state)
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w)
	printSummary(w, rc, s.currency)

	if exportFlag == "" {
		return nil
	}

	path := filepath.Join(dir, paySheetFileName(rc))
	if err := renderPaySheetPDF(buildPaySheet(rc, s.currency), path); err != nil {
		s.log.Error("export failed", "path", path, "error", err)
		return err
	}
	s.log.Info("pay sheet exported", "path", path)
	_, _ = fmt.Fprintf(w, "\n%s\n", Success("exported to "+path))
	return nil
}

// step adopts next, or returns err unchanged.
func (s *promptSession) step(next screen.State, err error) error {
	if err != nil {
		return err
	}
	s.log.Debug("state changed", "from", s.state.Name(), "to", next.Name())
	s.state = next
	return nil
}

func (s *promptSession) pickWorker(catalog roster.Catalog) error {
	idx, err := s.kit.Select("Select worker", catalog.Labels())
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(catalog) {
		return fmt.Errorf("worker selection %d out of range", idx)
	}
	return s.step(screen.SelectWorker(s.state, catalog[idx]))
}

func (s *promptSession) pickMonth(year int) error {
	months := calendar.Months()
	options := make([]string, len(months))
	for i, m := range months {
		options[i] = monthCard(m, year)
	}

	idx, err := s.kit.Select(fmt.Sprintf("Select month (%d)", year), options)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(months) {
		return fmt.Errorf("month selection %d out of range", idx)
	}
	return s.step(screen.SelectMonth(s.state, months[idx], year))
}

func (s *promptSession) enterWage() error {
	wage, err := s.kit.Prompt(fmt.Sprintf("Amount per day (%s)", s.currency), "")
	if err != nil {
		return err
	}
	if wage != "" && !roster.IsAmount(wage) {
		s.warnAmount(wage)
	}
	return s.step(screen.SetWage(s.state, wage))
}

// recordDays loops over day entries until the user declines another one.
func (s *promptSession) recordDays() error {
	for {
		more, err := s.kit.Confirm("Record a day?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := s.recordDay(); err != nil {
			return err
		}
	}
}

func (s *promptSession) recordDay() error {
	rc, _ := screen.Roster(s.state)

	days := rc.DaysInMonth()
	options := make([]string, days)
	for d := 1; d <= days; d++ {
		options[d-1] = s.dayOption(rc, d)
	}

	idx, err := s.kit.Select("Select day", options)
	if err != nil {
		return err
	}
	if err := s.step(screen.OpenDay(s.state, idx+1)); err != nil {
		return err
	}

	dd := s.state.(screen.DayDetail)
	amount, err := s.kit.Prompt(fmt.Sprintf("Amount paid on %s %d (%s)", calendar.ShortName(rc.Month), dd.Day, s.currency), dd.Draft.AmountPaid)
	if err != nil {
		return err
	}
	if amount != "" && !roster.IsAmount(amount) {
		s.warnAmount(amount)
	}

	absent, err := s.kit.Confirm(fmt.Sprintf("Mark %s %d absent?", calendar.ShortName(rc.Month), dd.Day))
	if err != nil {
		return err
	}

	if err := s.step(screen.EditDraft(s.state, amount, absent)); err != nil {
		return err
	}
	return s.step(screen.Submit(s.state))
}

// dayOption labels a day for the day selector, e.g. "03 Tue  ₹500".
func (s *promptSession) dayOption(rc roster.Context, day int) string {
	label := fmt.Sprintf("%02d %s", day, calendar.Weekday(rc.Year, rc.Month, day).String()[:3])
	e, ok := rc.Entry(day)
	switch {
	case !ok:
		return label
	case e.Absent:
		return label + "  absent"
	default:
		return label + "  " + pay.FormatAmount(s.currency, roster.ParseAmount(e.AmountPaid))
	}
}

func (s *promptSession) warnAmount(v string) {
	s.log.Warn("amount is not a whole number, counted as 0", "value", v)
	_, _ = fmt.Fprintln(s.out, Warning(fmt.Sprintf("%q is not a whole number and counts as 0", v)))
}
