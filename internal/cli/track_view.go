package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sss/roster/internal/calendar"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/roster"
	"github.com/sss/roster/internal/screen"
)

const (
	workerColWidth = 24
	monthColWidth  = 24
	dayColWidth    = 9
)

func (m trackModel) View() string {
	// If overlay is active, render it on top
	if m.overlay != nil {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, m.overlay.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	switch s := m.state.(type) {
	case screen.Picking:
		return renderPicker(m.catalog, m.cursor, m.footerMsg)
	case screen.MonthPicking:
		return renderMonthPicker(s.Worker, m.year, m.cursor, m.footerMsg)
	case screen.DayEditing:
		return renderDayGrid(s.Roster, m.now(), m.cursor, m.currency, m.footerMsg)
	}
	return ""
}

func renderFooter(b *strings.Builder, keys, footerMsg string) {
	b.WriteString("\n")
	footer := keys
	if footerMsg != "" {
		footer = footerMsg + "  |  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")
}

// renderPicker lists the catalog in a two-column grid.
func renderPicker(catalog roster.Catalog, cursor int, footerMsg string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("--- Workers ---"))
	b.WriteString("\n\n")

	for i, w := range catalog {
		cell := padRight(" "+w.Label, workerColWidth)
		if i == cursor {
			b.WriteString(selectedStyle.Render(cell))
		} else {
			b.WriteString(cell)
		}
		if i%pickerColumns == pickerColumns-1 || i == len(catalog)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}

	renderFooter(&b, "←/→/↑/↓ navigate  |  enter select  |  q quit", footerMsg)
	return b.String()
}

// monthCard is the one-line label of a month, e.g. "March   3  Starts Sun".
func monthCard(month time.Month, year int) string {
	return fmt.Sprintf("%-9s %2d  Starts %s", month, int(month), calendar.WeekdayAbbrev(month, year))
}

// renderMonthPicker shows the chosen worker and the twelve months of year.
func renderMonthPicker(w roster.Worker, year, cursor int, footerMsg string) string {
	var b strings.Builder

	b.WriteString(Primary(w.Label))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("--- Calendar %d ---", year)))
	b.WriteString("\n\n")

	for i, month := range calendar.Months() {
		cell := padRight(" "+monthCard(month, year), monthColWidth)
		if i == cursor {
			b.WriteString(selectedStyle.Render(cell))
		} else {
			b.WriteString(cell)
		}
		if i%monthColumns == monthColumns-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}

	renderFooter(&b, "←/→/↑/↓ navigate  |  enter open  |  tab next worker  |  esc back  |  q quit", footerMsg)
	return b.String()
}

// dayCellText is the content of one day cell: the day number followed by
// "A" for absent days or the paid amount.
func dayCellText(day int, e roster.DayEntry, recorded bool, currency string) string {
	text := fmt.Sprintf("%2d", day)
	if !recorded {
		return text
	}
	if e.Absent {
		return text + " A"
	}
	return text + " " + pay.FormatAmount(currency, roster.ParseAmount(e.AmountPaid))
}

// monthTitle formats the roster month the way the header shows it: "Mar 03 2026".
func monthTitle(rc roster.Context) string {
	return fmt.Sprintf("%s %02d %d", calendar.ShortName(rc.Month), int(rc.Month), rc.Year)
}

// renderDayGrid renders the Sunday-first month grid with the wage and the
// totals. cursorDay < 1 disables the cursor.
func renderDayGrid(rc roster.Context, now time.Time, cursorDay int, currency, footerMsg string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("--- %s  %s ---", rc.Worker.Label, monthTitle(rc))))
	b.WriteString("\n")

	wage := rc.Wage
	if wage == "" {
		wage = Silent("(not set)")
	}
	b.WriteString("Amount per day: " + wage)
	b.WriteString("\n\n")

	// Weekday header
	for i, h := range calendar.WeekdayHeaders {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(headerStyle.Render(padCenter(h, dayColWidth)))
	}
	b.WriteString("\n")

	for _, week := range calendar.Weeks(rc.Month, rc.Year) {
		for i, cell := range week {
			if i > 0 {
				b.WriteString(" ")
			}
			if cell.Blank() {
				b.WriteString(strings.Repeat(" ", dayColWidth))
				continue
			}

			e, recorded := rc.Entry(cell.Day)
			text := padCenter(dayCellText(cell.Day, e, recorded, currency), dayColWidth)

			switch {
			case cell.Day == cursorDay:
				b.WriteString(selectedStyle.Render(text))
			case calendar.IsToday(now, rc.Year, rc.Month, cell.Day):
				b.WriteString(todayStyle.Render(text))
			case recorded && e.Absent:
				b.WriteString(absentStyle.Render(text))
			case recorded:
				b.WriteString(paidStyle.Render(text))
			default:
				b.WriteString(dotStyle.Render(text))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderTotals(pay.Summarize(rc), currency))
	b.WriteString("\n")

	renderFooter(&b, "←/→/↑/↓ navigate  |  enter edit day  |  w wage  |  t today  |  x export pdf  |  esc back  |  q quit", footerMsg)
	return b.String()
}

// renderTotals is the totals panel shared by the grid and the day form.
func renderTotals(t pay.Totals, currency string) string {
	var b strings.Builder
	b.WriteString(Info(fmt.Sprintf("Month Total: %s", pay.FormatAmount(currency, t.Possible))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Paid: %s", pay.FormatAmount(currency, t.Paid)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Absent Days: %d", t.AbsentDays))
	b.WriteString("\n")

	remaining := fmt.Sprintf("Remaining: %s", pay.FormatAmount(currency, t.Remaining))
	if t.Remaining < 0 {
		b.WriteString(headerStyle.Render(Warning(remaining)))
	} else {
		b.WriteString(headerStyle.Render(Success(remaining)))
	}
	return b.String()
}
