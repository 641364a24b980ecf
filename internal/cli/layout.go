package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func padRight(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func padCenter(s string, width int) string {
	s = truncate(s, width)
	total := width - lipgloss.Width(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
