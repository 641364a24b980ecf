package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "₹50", truncate("₹500", 3))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestPadRight(t *testing.T) {
	t.Run("normal padding", func(t *testing.T) {
		assert.Equal(t, "abc   ", padRight("abc", 6))
	})

	t.Run("exact width", func(t *testing.T) {
		assert.Equal(t, "abcdef", padRight("abcdef", 6))
	})

	t.Run("truncation", func(t *testing.T) {
		assert.Equal(t, "abcdef", padRight("abcdefgh", 6))
	})

	t.Run("multibyte symbol counts as one cell", func(t *testing.T) {
		result := padRight("₹5", 4)
		assert.Equal(t, "₹5  ", result)
		assert.Equal(t, 4, lipgloss.Width(result))
	})
}

func TestPadCenter(t *testing.T) {
	t.Run("normal centering", func(t *testing.T) {
		assert.Equal(t, "  ab  ", padCenter("ab", 6))
	})

	t.Run("odd width puts the extra space on the right", func(t *testing.T) {
		assert.Equal(t, " ab  ", padCenter("ab", 5))
	})

	t.Run("truncation", func(t *testing.T) {
		assert.Equal(t, "abcdef", padCenter("abcdefgh", 6))
	})

	t.Run("day cell", func(t *testing.T) {
		assert.Equal(t, 9, lipgloss.Width(padCenter("12 ₹500", 9)))
	})
}
