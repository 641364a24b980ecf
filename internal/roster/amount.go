package roster

import "strconv"

// ParseAmount reads a wage or paid amount typed by the user. Anything that
// is not a non-negative whole number fitting in 32 bits counts as 0,
// including input with surrounding spaces.
func ParseAmount(s string) int {
	n, ok := parseAmount(s)
	if !ok {
		return 0
	}
	return n
}

// IsAmount reports whether s parses to a real amount. Empty input is
// accepted as "nothing paid".
func IsAmount(s string) bool {
	if s == "" {
		return true
	}
	_, ok := parseAmount(s)
	return ok
}

func parseAmount(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}
