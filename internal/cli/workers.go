package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/roster"
)

var workersCmd = LeafCommand{
	Use:   "workers",
	Short: "List the worker catalog",
	BoolFlags: []BoolFlag{
		{Name: "ids", Usage: "print only worker IDs, one per line"},
	},
	StrFlags: []StringFlag{
		{Name: "catalog", Usage: "YAML worker catalog (default: built-in sample workers)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		app, err := loadAppContext(catalogFlag)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		idsOnly, _ := cmd.Flags().GetBool("ids")
		return runWorkers(cmd, app.catalog, idsOnly)
	},
}.Build()

func runWorkers(cmd *cobra.Command, catalog roster.Catalog, idsOnly bool) error {
	w := cmd.OutOrStdout()

	if idsOnly {
		for _, wk := range catalog {
			_, _ = fmt.Fprintln(w, wk.ID)
		}
		return nil
	}

	idWidth := len("ID")
	for _, wk := range catalog {
		idWidth = max(idWidth, len(wk.ID))
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(padRight("ID", idWidth)), Silent("LABEL"))
	for _, wk := range catalog {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Primary(padRight(wk.ID, idWidth)), wk.Label)
	}
	return nil
}
