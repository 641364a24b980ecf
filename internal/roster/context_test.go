package roster

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorker = Worker{ID: "sample-1", Label: "Sample 1"}

func TestNewContext(t *testing.T) {
	c := NewContext(testWorker, time.March, 2026)

	assert.Equal(t, testWorker, c.Worker)
	assert.Equal(t, time.March, c.Month)
	assert.Equal(t, 2026, c.Year)
	assert.Equal(t, "", c.Wage)
	assert.Equal(t, 0, c.Entries.Len())
	assert.Equal(t, 31, c.DaysInMonth())
}

func TestContextSetEntry(t *testing.T) {
	c := NewContext(testWorker, time.April, 2026)
	c = c.SetEntry(10, "500", false)

	e, ok := c.Entry(10)
	require.True(t, ok)
	assert.Equal(t, DayEntry{Day: 10, AmountPaid: "500"}, e)

	_, ok = c.Entry(11)
	assert.False(t, ok)
}

func TestContextLastWriteWins(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewContext(testWorker, time.January, 2025)
	want := map[int]DayEntry{}

	for i := 0; i < 500; i++ {
		day := rng.Intn(31) + 1
		amount := fmt.Sprintf("%d", rng.Intn(1000))
		if rng.Intn(5) == 0 {
			amount = "abc"
		}
		absent := rng.Intn(3) == 0

		c = c.SetEntry(day, amount, absent)
		want[day] = DayEntry{Day: day, AmountPaid: amount, Absent: absent}
	}

	require.Equal(t, len(want), c.Entries.Len())
	for day, w := range want {
		got, ok := c.Entry(day)
		require.True(t, ok, "day %d", day)
		assert.Equal(t, w, got, "day %d", day)
	}
}

func TestContextSetEntryLeavesPreviousValue(t *testing.T) {
	before := NewContext(testWorker, time.March, 2026).SetEntry(1, "100", false)
	after := before.SetEntry(1, "300", true).SetEntry(2, "50", false)

	e, _ := before.Entry(1)
	assert.Equal(t, "100", e.AmountPaid)
	assert.False(t, e.Absent)
	assert.Equal(t, 1, before.Entries.Len())
	assert.Equal(t, 2, after.Entries.Len())
}

func TestContextWithWageKeepsEntries(t *testing.T) {
	c := NewContext(testWorker, time.March, 2026).
		SetEntry(4, "250", false).
		WithWage("500")
	c = c.WithWage("600")

	assert.Equal(t, "600", c.Wage)
	e, ok := c.Entry(4)
	require.True(t, ok)
	assert.Equal(t, "250", e.AmountPaid)
}

func TestContextDate(t *testing.T) {
	c := NewContext(testWorker, time.February, 2024)
	d := c.Date(29, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)
}
