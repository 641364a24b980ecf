package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/calendar"
	"github.com/sss/roster/internal/log"
	"github.com/sss/roster/internal/roster"
	"github.com/sss/roster/internal/screen"
)

// exportFunc writes a pay sheet to path.
type exportFunc func(sheet paySheet, path string) error

var trackCmd = LeafCommand{
	Use:   "track",
	Short: "Open the interactive attendance tracker",
	StrFlags: []StringFlag{
		{Name: "worker", Usage: "worker ID or label to preselect"},
		{Name: "month", Usage: "month to open (1-12 or name); requires --worker"},
		{Name: "wage", Usage: "daily wage to preset; requires --month"},
		{Name: "catalog", Usage: "YAML worker catalog (default: built-in sample workers)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		workerFlag, _ := cmd.Flags().GetString("worker")
		monthFlag, _ := cmd.Flags().GetString("month")
		wageFlag, _ := cmd.Flags().GetString("wage")

		app, err := loadAppContext(catalogFlag)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		opts := trackOptions{
			worker:    workerFlag,
			month:     monthFlag,
			wage:      wageFlag,
			wageSet:   cmd.Flags().Changed("wage"),
			exportDir: dir,
		}
		return runTrack(cmd, app, opts, calendar.SystemClock)
	},
}.Build()

type trackOptions struct {
	worker    string
	month     string
	wage      string
	wageSet   bool
	exportDir string
}

// trackModel drives the screen state machine from key presses.
//
// cursor means different things per screen: a catalog index while picking a
// worker, a month index (0-11) while picking a month, and a day of month
// while editing days.
type trackModel struct {
	state      screen.State
	catalog    roster.Catalog
	year       int
	now        calendar.Clock
	currency   string
	cursor     int
	overlay    tea.Model
	termWidth  int
	termHeight int
	footerMsg  string
	exportDir  string
	export     exportFunc
	log        *log.Logger
}

func newTrackModel(catalog roster.Catalog, now calendar.Clock, currency string, logger *log.Logger) trackModel {
	return trackModel{
		state:      screen.Start(),
		catalog:    catalog,
		year:       now().Year(),
		now:        now,
		currency:   currency,
		termWidth:  100,
		termHeight: 40,
		exportDir:  ".",
		export:     renderPaySheetPDF,
		log:        logger.WithComponent(log.ComponentTUI),
	}
}

// preselect applies the --worker/--month/--wage flags.
func (m trackModel) preselect(opts trackOptions) (trackModel, error) {
	if opts.worker == "" {
		switch {
		case opts.month != "":
			return m, fmt.Errorf("--month requires --worker")
		case opts.wageSet:
			return m, fmt.Errorf("--wage requires --month")
		}
		return m, nil
	}

	w, err := m.catalog.Find(opts.worker)
	if err != nil {
		return m, err
	}
	if m, err = m.transition(screen.SelectWorker(m.state, w)); err != nil {
		return m, err
	}
	m.cursor = int(m.now().Month()) - 1

	if opts.month == "" {
		if opts.wageSet {
			return m, fmt.Errorf("--wage requires --month")
		}
		return m, nil
	}

	month, err := resolveMonth(opts.month)
	if err != nil {
		return m, err
	}
	if m, err = m.transition(screen.SelectMonth(m.state, month, m.year)); err != nil {
		return m, err
	}
	m.cursor = m.initialDay()

	if opts.wageSet {
		if m, err = m.transition(screen.SetWage(m.state, opts.wage)); err != nil {
			return m, err
		}
	}
	return m, nil
}

// transition adopts next when err is nil and logs the change.
func (m trackModel) transition(next screen.State, err error) (trackModel, error) {
	if err != nil {
		m.log.Warn("transition rejected", "state", m.state.Name(), "error", err)
		return m, err
	}
	if next.Name() != m.state.Name() {
		m.log.Debug("state changed", "from", m.state.Name(), "to", next.Name())
	}
	m.state = next
	return m, nil
}

// initialDay puts the day cursor on today when the roster is for the
// current month, otherwise on the 1st.
func (m trackModel) initialDay() int {
	rc, ok := screen.Roster(m.state)
	if !ok {
		return 0
	}
	now := m.now()
	if now.Year() == rc.Year && now.Month() == rc.Month {
		return now.Day()
	}
	return 1
}

// workerIndex returns the catalog position of w, or 0.
func (m trackModel) workerIndex(w roster.Worker) int {
	for i, c := range m.catalog {
		if c.ID == w.ID {
			return i
		}
	}
	return 0
}

func (m trackModel) Init() tea.Cmd {
	return nil
}

func runTrack(cmd *cobra.Command, app *appContext, opts trackOptions, now calendar.Clock) error {
	out := cmd.OutOrStdout()

	m := newTrackModel(app.catalog, now, app.cfg.Currency, app.log)
	m.exportDir = opts.exportDir

	m, err := m.preselect(opts)
	if err != nil {
		return err
	}

	// Non-TTY fallback: print the month statically
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		rc, ok := screen.Roster(m.state)
		if !ok {
			return fmt.Errorf("not a terminal: --worker and --month are required")
		}
		_, err := fmt.Fprint(out, renderDayGrid(rc, m.now(), -1, m.currency, ""))
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

// exportPath is where the pay sheet of rc is written.
func (m trackModel) exportPath(rc roster.Context) string {
	return filepath.Join(m.exportDir, paySheetFileName(rc))
}
