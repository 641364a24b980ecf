package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidMonth is returned when a month expression cannot be resolved.
var ErrInvalidMonth = errors.New("invalid month")

// Months returns January through December in calendar order.
func Months() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

// WeekdayAbbrev returns the three-letter weekday the month starts on.
func WeekdayAbbrev(month time.Month, year int) string {
	return WeekdayHeaders[FirstWeekdayOffset(month, year)]
}

// ShortName returns the three-letter month name, e.g. "Mar".
func ShortName(month time.Month) string {
	return month.String()[:3]
}

var monthNames = func() map[string]time.Month {
	names := make(map[string]time.Month, 24)
	for _, m := range Months() {
		full := strings.ToLower(m.String())
		names[full] = m
		names[full[:3]] = m
	}
	return names
}()

// ParseMonth resolves a month from "3", "03", "mar" or "March".
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMonth)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %d (expected 1-12)", ErrInvalidMonth, n)
		}
		return time.Month(n), nil
	}

	if m, ok := monthNames[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}
