package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sss/roster/internal/log"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/screen"
)

const (
	pickerColumns = 2
	monthColumns  = 3
)

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If overlay is active, delegate to it
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			return m.back()
		}

		switch m.state.(type) {
		case screen.Picking:
			return m.updatePicking(msg)
		case screen.MonthPicking:
			return m.updateMonthPicking(msg)
		case screen.DayEditing:
			return m.updateDayEditing(msg)
		}
	}
	return m, nil
}

// moveCursor moves a grid cursor of the given width within [lo, hi].
func moveCursor(key string, cursor, columns, lo, hi int) int {
	next := cursor
	switch key {
	case "right", "l":
		next++
	case "left", "h":
		next--
	case "down", "j":
		next += columns
	case "up", "k":
		next -= columns
	}
	if next < lo || next > hi {
		return cursor
	}
	return next
}

func (m trackModel) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if len(m.catalog) == 0 {
			return m, nil
		}
		next, err := m.transition(screen.SelectWorker(m.state, m.catalog[m.cursor]))
		if err != nil {
			m.footerMsg = "Error: " + err.Error()
			return m, nil
		}
		next.cursor = int(m.now().Month()) - 1
		next.footerMsg = ""
		return next, nil
	}
	m.cursor = moveCursor(msg.String(), m.cursor, pickerColumns, 0, len(m.catalog)-1)
	return m, nil
}

func (m trackModel) updateMonthPicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		month := time.Month(m.cursor + 1)
		next, err := m.transition(screen.SelectMonth(m.state, month, m.year))
		if err != nil {
			m.footerMsg = "Error: " + err.Error()
			return m, nil
		}
		next.cursor = next.initialDay()
		next.footerMsg = ""
		return next, nil
	case "tab":
		// Swap to the next worker without leaving the month cards
		w, _ := screen.Worker(m.state)
		idx := (m.workerIndex(w) + 1) % len(m.catalog)
		next, err := m.transition(screen.SelectWorker(m.state, m.catalog[idx]))
		if err != nil {
			m.footerMsg = "Error: " + err.Error()
			return m, nil
		}
		return next, nil
	}
	m.cursor = moveCursor(msg.String(), m.cursor, monthColumns, 0, 11)
	return m, nil
}

func (m trackModel) updateDayEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rc, _ := screen.Roster(m.state)

	switch msg.String() {
	case "enter":
		return m.openDay()
	case "w":
		m.overlay = newWageOverlay(rc.Wage)
		return m, nil
	case "x":
		return m.exportSheet()
	case "t":
		now := m.now()
		if now.Year() == rc.Year && now.Month() == rc.Month {
			m.cursor = now.Day()
		}
		return m, nil
	}
	m.cursor = moveCursor(msg.String(), m.cursor, 7, 1, rc.DaysInMonth())
	return m, nil
}

// back leaves the current screen, restoring the cursor of the one below.
func (m trackModel) back() (tea.Model, tea.Cmd) {
	prev := m.state
	next, _ := m.transition(screen.Back(m.state), nil)
	next.footerMsg = ""

	switch s := prev.(type) {
	case screen.MonthPicking:
		next.cursor = m.workerIndex(s.Worker)
	case screen.DayEditing:
		next.cursor = int(s.Roster.Month) - 1
	}
	return next, nil
}

func (m trackModel) openDay() (tea.Model, tea.Cmd) {
	next, err := m.transition(screen.OpenDay(m.state, m.cursor))
	if err != nil {
		m.footerMsg = "Error: " + err.Error()
		return m, nil
	}
	dd := next.state.(screen.DayDetail)
	next.overlay = newDayOverlay(dd, pay.Summarize(dd.Roster), m.currency)
	return next, nil
}

func (m trackModel) exportSheet() (tea.Model, tea.Cmd) {
	rc, ok := screen.Roster(m.state)
	if !ok {
		return m, nil
	}
	path := m.exportPath(rc)
	logger := m.log.WithComponent(log.ComponentExport).With("worker", rc.Worker.ID, "path", path)

	if err := m.export(buildPaySheet(rc, m.currency), path); err != nil {
		logger.Error("export failed", "error", err)
		m.footerMsg = "Error exporting: " + err.Error()
		return m, nil
	}
	logger.Info("pay sheet exported")
	m.footerMsg = "Exported pay sheet to " + path
	return m, nil
}

// updateOverlay delegates input to the active overlay and handles overlay results.
func (m trackModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle overlay result messages directly
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.termWidth = size.Width
		m.termHeight = size.Height
		return m, nil
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

// handleOverlayResult processes the result when an overlay completes.
func (m trackModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	switch result.action {
	case "cancel":
		m.overlay = nil
		m.footerMsg = ""
		if _, ok := m.state.(screen.DayDetail); ok {
			m, _ = m.transition(screen.Back(m.state), nil)
		}
		return m, nil

	case "save":
		return m.handleSave()

	case "wage":
		return m.handleWage()
	}

	m.overlay = nil
	return m, nil
}

func (m trackModel) handleSave() (tea.Model, tea.Cmd) {
	form, ok := m.overlay.(*dayOverlay)
	if !ok {
		m.overlay = nil
		return m, nil
	}
	m.overlay = nil

	next, err := m.transition(screen.EditDraft(m.state, form.amount, form.absent))
	if err == nil {
		next, err = next.transition(screen.Submit(next.state))
	}
	if err != nil {
		m.footerMsg = "Error saving: " + err.Error()
		return m, nil
	}

	if form.absent {
		next.footerMsg = fmt.Sprintf("Day %d marked absent", form.day)
	} else {
		next.footerMsg = fmt.Sprintf("Day %d saved", form.day)
	}
	return next, nil
}

func (m trackModel) handleWage() (tea.Model, tea.Cmd) {
	form, ok := m.overlay.(*wageOverlay)
	m.overlay = nil
	if !ok {
		return m, nil
	}

	next, err := m.transition(screen.SetWage(m.state, form.value))
	if err != nil {
		m.footerMsg = "Error: " + err.Error()
		return m, nil
	}
	next.footerMsg = "Wage updated"
	return next, nil
}
