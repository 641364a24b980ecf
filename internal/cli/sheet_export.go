package cli

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/roster"
	"github.com/sss/roster/internal/stringutil"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfAbsentColor = props.Color{Red: 190, Green: 60, Blue: 60}
)

// paySheet is the printable summary of one worker's month.
type paySheet struct {
	Worker   roster.Worker
	Month    time.Month
	Year     int
	Wage     string
	Currency string
	Days     []paySheetDay
	Totals   pay.Totals
}

// paySheetDay is one recorded day of the sheet.
type paySheetDay struct {
	Date   time.Time
	Absent bool
	Amount int
}

// buildPaySheet collects the recorded days of rc in day order.
func buildPaySheet(rc roster.Context, currency string) paySheet {
	sheet := paySheet{
		Worker:   rc.Worker,
		Month:    rc.Month,
		Year:     rc.Year,
		Wage:     rc.Wage,
		Currency: currency,
		Totals:   pay.Summarize(rc),
	}
	for _, e := range rc.Entries.All() {
		sheet.Days = append(sheet.Days, paySheetDay{
			Date:   rc.Date(e.Day, time.UTC),
			Absent: e.Absent,
			Amount: roster.ParseAmount(e.AmountPaid),
		})
	}
	return sheet
}

// paySheetFileName is "<worker-slug>-<year>-month-<mm>.pdf".
func paySheetFileName(rc roster.Context) string {
	return fmt.Sprintf("%s-%d-month-%02d.pdf",
		stringutil.Slugify(rc.Worker.ID, "worker"), rc.Year, int(rc.Month))
}

// renderPaySheetPDF generates the pay sheet PDF and saves it to path.
// The built-in PDF fonts are Latin-1 only, so every string goes through
// stringutil.ASCII.
func renderPaySheetPDF(sheet paySheet, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)
	money := func(n int) string {
		return stringutil.ASCII(pay.FormatAmount(sheet.Currency, n))
	}

	// Document header
	m.AddRow(14,
		text.NewCol(12, stringutil.ASCII(sheet.Worker.Label), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	wage := "not set"
	if sheet.Wage != "" {
		wage = money(roster.ParseAmount(sheet.Wage))
	}
	m.AddRow(8,
		text.NewCol(8, fmt.Sprintf("%s %d", sheet.Month, sheet.Year), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
		text.NewCol(4, "Amount per day: "+wage, props.Text{
			Size:  10,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	if len(sheet.Days) == 0 {
		m.AddRow(8, text.NewCol(12, "No days recorded.", props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}))
	}

	for _, day := range sheet.Days {
		label := fmt.Sprintf("%s %d, %s", day.Date.Month(), day.Date.Day(), day.Date.Weekday())
		status := money(day.Amount)
		statusProps := props.Text{Size: 9, Align: align.Right}
		if day.Absent {
			status = "Absent"
			if day.Amount > 0 {
				status = "Absent, paid " + money(day.Amount)
			}
			statusProps.Color = &pdfAbsentColor
		}
		m.AddRow(6,
			text.NewCol(8, "  "+label, props.Text{Size: 9}),
			text.NewCol(4, status, statusProps),
		)
	}

	// Totals footer
	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	totals := []struct {
		label string
		value string
	}{
		{"Month Total", money(sheet.Totals.Possible)},
		{"Paid", money(sheet.Totals.Paid)},
		{"Absent Days", fmt.Sprintf("%d", sheet.Totals.AbsentDays)},
		{"Absent Deduction", money(sheet.Totals.AbsentDeduction)},
	}
	for _, row := range totals {
		m.AddRow(6,
			text.NewCol(8, row.label, props.Text{Size: 10}),
			text.NewCol(4, row.value, props.Text{Size: 10, Align: align.Right}),
		)
	}
	m.AddRow(10,
		text.NewCol(8, "Remaining", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(4, money(sheet.Totals.Remaining), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(path)
}
