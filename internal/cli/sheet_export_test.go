package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sss/roster/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaySheet(t *testing.T) {
	rc := marchRoster().
		SetEntry(12, "500", false).
		SetEntry(2, "1000", false).
		SetEntry(4, "200", true)

	sheet := buildPaySheet(rc, "₹")

	assert.Equal(t, "sample-1", sheet.Worker.ID)
	assert.Equal(t, time.March, sheet.Month)
	assert.Equal(t, 2026, sheet.Year)
	assert.Equal(t, "500", sheet.Wage)
	assert.Equal(t, "₹", sheet.Currency)

	require.Len(t, sheet.Days, 3)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), sheet.Days[0].Date)
	assert.Equal(t, 1000, sheet.Days[0].Amount)
	assert.Equal(t, 4, sheet.Days[1].Date.Day())
	assert.True(t, sheet.Days[1].Absent)
	assert.Equal(t, 200, sheet.Days[1].Amount)
	assert.Equal(t, 12, sheet.Days[2].Date.Day())

	assert.Equal(t, 15500, sheet.Totals.Possible)
	assert.Equal(t, 1700, sheet.Totals.Paid)
	assert.Equal(t, 13300, sheet.Totals.Remaining)
}

func TestPaySheetFileName(t *testing.T) {
	rc := roster.NewContext(roster.Worker{ID: "Ravi K.", Label: "Ravi"}, time.November, 2026)
	assert.Equal(t, "ravi-k-2026-month-11.pdf", paySheetFileName(rc))

	rc = roster.NewContext(roster.Worker{ID: "***", Label: "?"}, time.January, 2027)
	assert.Equal(t, "worker-2027-month-01.pdf", paySheetFileName(rc))
}

func TestRenderPaySheetPDF_CreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sheet.pdf")

	rc := marchRoster().
		SetEntry(2, "1000", false).
		SetEntry(4, "", true).
		SetEntry(5, "100", true)

	err := renderPaySheetPDF(buildPaySheet(rc, "₹"), outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestRenderPaySheetPDF_EmptyMonth(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "empty.pdf")

	rc := roster.NewContext(roster.Worker{ID: "sample-2", Label: "Sample 2"}, time.February, 2028)
	err := renderPaySheetPDF(buildPaySheet(rc, "€"), outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestRenderPaySheetPDF_BadPath(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "sheet.pdf")

	err := renderPaySheetPDF(buildPaySheet(marchRoster(), "₹"), outPath)
	assert.Error(t, err)
}
