package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sss/roster/internal/calendar"
	"github.com/sss/roster/internal/pay"
	"github.com/sss/roster/internal/roster"
	"github.com/sss/roster/internal/screen"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel", "save", "wage"
}

func overlayResultMsg(action string) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(50)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Day Overlay ---
// Form to record the paid amount and absence of one day.

type dayField int

const (
	dayFieldAmount dayField = iota
	dayFieldAbsent
	dayFieldConfirm
)

type dayOverlay struct {
	day      int
	date     string
	wage     string
	totals   pay.Totals
	currency string
	amount   string
	absent   bool
	field    dayField
}

func newDayOverlay(dd screen.DayDetail, totals pay.Totals, currency string) *dayOverlay {
	rc := dd.Roster
	wd := calendar.Weekday(rc.Year, rc.Month, dd.Day)
	return &dayOverlay{
		day:      dd.Day,
		date:     fmt.Sprintf("%s, %s %d, %d", wd, rc.Month, dd.Day, rc.Year),
		wage:     rc.Wage,
		totals:   totals,
		currency: currency,
		amount:   dd.Draft.AmountPaid,
		absent:   dd.Draft.Absent,
	}
}

func (o *dayOverlay) Init() tea.Cmd { return nil }

func (o *dayOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, overlayResultMsg("cancel")
		case "tab", "down":
			if o.field < dayFieldConfirm {
				o.field++
			}
		case "shift+tab", "up":
			if o.field > dayFieldAmount {
				o.field--
			}
		case " ":
			if o.field == dayFieldAbsent {
				o.absent = !o.absent
			}
		case "enter":
			if o.field == dayFieldConfirm {
				return o, overlayResultMsg("save")
			}
			// Enter on a field moves to next
			o.field++
		case "backspace":
			if o.field == dayFieldAmount && len(o.amount) > 0 {
				o.amount = o.amount[:len(o.amount)-1]
			}
		default:
			if o.field == dayFieldAmount && len(msg.String()) == 1 {
				o.amount += msg.String()
			}
		}
	}
	return o, nil
}

func (o *dayOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.date))
	b.WriteString("\n\n")

	wage := o.wage
	if wage == "" {
		wage = "(not set)"
	}
	b.WriteString(overlayMutedStyle.Render("Amount per day: " + wage))
	b.WriteString("\n")
	b.WriteString(renderTotals(o.totals, o.currency))
	b.WriteString("\n\n")

	amountLine := fmt.Sprintf("Amount Paid: %s", o.amount)
	check := "[ ]"
	if o.absent {
		check = "[x]"
	}
	absentLine := fmt.Sprintf("Absent: %s", check)

	fields := []struct {
		label string
		field dayField
	}{
		{amountLine, dayFieldAmount},
		{absentLine, dayFieldAbsent},
	}
	for _, f := range fields {
		if o.field == f.field {
			b.WriteString(overlayActiveStyle.Render("> " + f.label))
		} else {
			b.WriteString("  " + f.label)
		}
		b.WriteString("\n")
	}

	if !roster.IsAmount(o.amount) {
		b.WriteString(Warning("  not a whole number, counts as 0"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if o.field == dayFieldConfirm {
		b.WriteString(overlayActiveStyle.Render("> [Save]"))
	} else {
		b.WriteString("  [Save]")
	}
	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("tab/↑/↓ navigate  |  space toggle  |  enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// --- Wage Overlay ---
// Single field editing the amount per day.

type wageOverlay struct {
	value string
}

func newWageOverlay(current string) *wageOverlay {
	return &wageOverlay{value: current}
}

func (o *wageOverlay) Init() tea.Cmd { return nil }

func (o *wageOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, overlayResultMsg("cancel")
		case "enter":
			return o, overlayResultMsg("wage")
		case "backspace":
			if len(o.value) > 0 {
				o.value = o.value[:len(o.value)-1]
			}
		default:
			if len(msg.String()) == 1 && msg.String() != " " {
				o.value += msg.String()
			}
		}
	}
	return o, nil
}

func (o *wageOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Amount per day"))
	b.WriteString("\n\n")
	b.WriteString(overlayActiveStyle.Render("> " + o.value))
	b.WriteString("\n")
	if !roster.IsAmount(o.value) {
		b.WriteString(Warning("  not a whole number, counts as 0"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("enter save  |  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}
