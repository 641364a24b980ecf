package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedKit answers prompts from queues and records what was asked.
type scriptedKit struct {
	selects  []int
	prompts  []string
	confirms []bool

	selectTitles  []string
	promptTitles  []string
	promptInitial []string
	options       [][]string
}

func (s *scriptedKit) kit() PromptKit {
	return PromptKit{
		Select: func(title string, options []string) (int, error) {
			s.selectTitles = append(s.selectTitles, title)
			s.options = append(s.options, options)
			if len(s.selects) == 0 {
				return 0, errors.New("unexpected select: " + title)
			}
			v := s.selects[0]
			s.selects = s.selects[1:]
			return v, nil
		},
		Prompt: func(title, initial string) (string, error) {
			s.promptTitles = append(s.promptTitles, title)
			s.promptInitial = append(s.promptInitial, initial)
			if len(s.prompts) == 0 {
				return "", errors.New("unexpected prompt: " + title)
			}
			v := s.prompts[0]
			s.prompts = s.prompts[1:]
			return v, nil
		},
		Confirm: func(title string) (bool, error) {
			if len(s.confirms) == 0 {
				return false, errors.New("unexpected confirm: " + title)
			}
			v := s.confirms[0]
			s.confirms = s.confirms[1:]
			return v, nil
		},
	}
}

func execPromptSession(t *testing.T, sk *scriptedKit, exportFlag, dir string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	err := runPromptSession(cmd, sk.kit(), testApp(), fixedNow, exportFlag, dir)
	return buf.String(), err
}

func TestPromptSession_RecordsMonth(t *testing.T) {
	sk := &scriptedKit{
		// worker Sample 2, April, day 1, day 3
		selects: []int{1, 3, 0, 2},
		// wage, day 1 amount, day 3 amount
		prompts: []string{"500", "1000", ""},
		// record? absent? record? absent? record?
		confirms: []bool{true, false, true, true, false},
	}

	out, err := execPromptSession(t, sk, "", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"Select worker", "Select month (2026)", "Select day", "Select day"}, sk.selectTitles)
	assert.Equal(t, []string{"Amount per day (₹)", "Amount paid on Apr 1 (₹)", "Amount paid on Apr 3 (₹)"}, sk.promptTitles)

	// The second day list shows the first recorded day
	require.Len(t, sk.options, 4)
	assert.Len(t, sk.options[2], 30)
	assert.Equal(t, "01 Wed", sk.options[2][0])
	assert.Equal(t, "01 Wed  ₹1000", sk.options[3][0])

	assert.Contains(t, out, "Worker:         Sample 2")
	assert.Contains(t, out, "Month:          April 2026 (30 days)")
	assert.Contains(t, out, "Paid:           ₹1000")
	assert.Contains(t, out, "Absent Days:    1 (-₹500)")
	assert.Contains(t, out, "Remaining:      ₹13500")
}

func TestPromptSession_ReopenedDayStartsFromEntry(t *testing.T) {
	sk := &scriptedKit{
		selects:  []int{0, 2, 4, 4},
		prompts:  []string{"600", "200", "300"},
		confirms: []bool{true, false, true, false, false},
	}

	out, err := execPromptSession(t, sk, "", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "", "200"}, sk.promptInitial)
	assert.Equal(t, "05 Thu  ₹200", sk.options[3][4])
	assert.Contains(t, out, "Paid:           ₹300")
	assert.Contains(t, out, "Recorded days:  1 paid, 0 absent, 30 unmarked")
}

func TestPromptSession_WarnsOnInvalidAmount(t *testing.T) {
	sk := &scriptedKit{
		selects:  []int{0, 0},
		prompts:  []string{"five hundred"},
		confirms: []bool{false},
	}

	out, err := execPromptSession(t, sk, "", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, `"five hundred" is not a whole number and counts as 0`)
	assert.Contains(t, out, "Month Total:    ₹0")
}

func TestPromptSession_ExportPDF(t *testing.T) {
	dir := t.TempDir()
	sk := &scriptedKit{
		selects:  []int{0, 2, 9},
		prompts:  []string{"500", "500"},
		confirms: []bool{true, false, false},
	}

	out, err := execPromptSession(t, sk, "pdf", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "sample-1-2026-month-03.pdf")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
	assert.Contains(t, out, "exported to "+path)
}

func TestPromptSession_UnsupportedExport(t *testing.T) {
	_, err := execPromptSession(t, &scriptedKit{}, "csv", t.TempDir())
	assert.EqualError(t, err, `unsupported export format "csv" (supported: pdf)`)
}

func TestPromptSession_PromptErrorStops(t *testing.T) {
	sk := &scriptedKit{selects: []int{0, 0}}

	_, err := execPromptSession(t, sk, "", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected prompt")
}

func TestPromptSession_SelectionOutOfRange(t *testing.T) {
	_, err := execPromptSession(t, &scriptedKit{selects: []int{6}}, "", t.TempDir())
	assert.EqualError(t, err, "worker selection 6 out of range")

	_, err = execPromptSession(t, &scriptedKit{selects: []int{0, 12}}, "", t.TempDir())
	assert.EqualError(t, err, "month selection 12 out of range")
}

func TestPromptSession_DaySelectionOutOfRange(t *testing.T) {
	sk := &scriptedKit{
		selects:  []int{0, 1, 28},
		prompts:  []string{"500"},
		confirms: []bool{true},
	}

	_, err := execPromptSession(t, sk, "", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day out of range")
}
