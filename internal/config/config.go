package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment.
type Config struct {
	// Currency is the symbol printed before amounts.
	Currency string

	// CatalogPath points at a YAML worker catalog. Empty means the built-in one.
	CatalogPath string

	// LogFile receives debug logs. Empty discards them.
	LogFile  string
	LogLevel string
}

// Load reads the configuration. Variables already present in the process
// environment win over the optional .env file in the working directory.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return &Config{
		Currency:    get("ROSTER_CURRENCY", "₹"),
		CatalogPath: get("ROSTER_CATALOG", ""),
		LogFile:     get("ROSTER_LOG_FILE", ""),
		LogLevel:    get("ROSTER_LOG_LEVEL", "info"),
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Currency == "" {
		errs = append(errs, errors.New("currency symbol cannot be empty"))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if c.CatalogPath != "" {
		if info, err := os.Stat(c.CatalogPath); err != nil {
			errs = append(errs, fmt.Errorf("catalog %q: %w", c.CatalogPath, err))
		} else if info.IsDir() {
			errs = append(errs, fmt.Errorf("catalog %q is a directory", c.CatalogPath))
		}
	}

	return errors.Join(errs...)
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.LogLevel)
}
