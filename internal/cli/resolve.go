package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sss/roster/internal/calendar"
	"github.com/sss/roster/internal/config"
	"github.com/sss/roster/internal/log"
	"github.com/sss/roster/internal/roster"
)

// appContext bundles what every command needs: settings, the worker catalog
// and a logger.
type appContext struct {
	cfg     *config.Config
	catalog roster.Catalog
	log     *log.Logger
	closer  io.Closer
}

func (a *appContext) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// loadAppContext reads the configuration and the catalog. catalogFlag, when
// set, takes precedence over ROSTER_CATALOG.
func loadAppContext(catalogFlag string) (*appContext, error) {
	cfg := config.Load()
	if catalogFlag != "" {
		cfg.CatalogPath = catalogFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.SlogLevel()
	logger, closer, err := log.Open(cfg.LogFile, level)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	catalog, err := roster.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	logger.WithComponent(log.ComponentCatalog).Debug("catalog loaded", "workers", len(catalog), "path", cfg.CatalogPath)

	return &appContext{
		cfg:     cfg,
		catalog: catalog,
		log:     logger,
		closer:  closer,
	}, nil
}

// resolveYear parses --year, defaulting to the current year.
func resolveYear(yearFlag string, now time.Time) (int, error) {
	if yearFlag == "" {
		return now.Year(), nil
	}
	y, err := strconv.Atoi(yearFlag)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearFlag)
	}
	return y, nil
}

// resolveMonth parses --month ("3", "mar", "March").
func resolveMonth(monthFlag string) (time.Month, error) {
	m, err := calendar.ParseMonth(monthFlag)
	if err != nil {
		return 0, fmt.Errorf("invalid --month value %q (expected 1-12 or a month name)", monthFlag)
	}
	return m, nil
}

// resolveDay parses a day number and checks it against the month.
func resolveDay(s string, month time.Month, year int) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if n := calendar.DaysInMonth(month, year); day < 1 || day > n {
		return 0, fmt.Errorf("day %d out of range for %s %d (1-%d)", day, month, year, n)
	}
	return day, nil
}
