// Package dashboard implements the interactive terminal dashboard: a filter
// form, an add-expense form, the KPI row, the category breakdown and the
// entry table. Every change re-reads the ledger file, re-filters and
// re-renders, the same pipeline the CLI commands use.
package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/logging"
	"github.com/AbuSaud44/expense-dash/internal/models"
	"github.com/AbuSaud44/expense-dash/internal/report"
	"github.com/AbuSaud44/expense-dash/internal/store"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Dashboard holds the tview application and its widgets.
type Dashboard struct {
	app    *tview.Application
	led    *ledger.Ledger
	known  []string
	filter report.Filter

	kpiView    *tview.TextView
	statusView *tview.TextView
	catTable   *tview.Table
	entryTable *tview.Table
}

// New builds a dashboard over the given ledger. knownCategories feeds the
// category autocomplete in both forms.
func New(led *ledger.Ledger, knownCategories []string) *Dashboard {
	return &Dashboard{
		app:    tview.NewApplication(),
		led:    led,
		known:  knownCategories,
		filter: report.Filter{Year: time.Now().Year()},
	}
}

// Run starts the terminal UI and blocks until the user quits.
func (d *Dashboard) Run() error {
	d.kpiView = tview.NewTextView().SetDynamicColors(true)
	d.kpiView.SetBorder(true).SetTitle(" Summary ")

	d.statusView = tview.NewTextView().SetDynamicColors(true)

	d.catTable = tview.NewTable().SetFixed(1, 0)
	d.catTable.SetBorder(true).SetTitle(" By category ")

	d.entryTable = tview.NewTable().SetFixed(1, 0)
	d.entryTable.SetBorder(true).SetTitle(" Entries ")

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.buildFilterForm(), 9, 0, true).
		AddItem(d.buildAddForm(), 0, 1, false).
		AddItem(d.statusView, 2, 0, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.kpiView, 7, 0, false).
		AddItem(d.catTable, 0, 1, false).
		AddItem(d.entryTable, 0, 2, false)

	layout := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 36, 0, true).
		AddItem(right, 0, 1, false)

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			d.app.Stop()
			return nil
		}
		return event
	})

	d.refresh()

	return d.app.SetRoot(layout, true).EnableMouse(true).Run()
}

func (d *Dashboard) buildFilterForm() *tview.Form {
	months := make([]string, 0, 13)
	months = append(months, "All year")
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}

	form := tview.NewForm().
		AddInputField("Year", strconv.Itoa(d.filter.Year), 6, tview.InputFieldInteger, func(text string) {
			year, err := strconv.Atoi(text)
			if err != nil {
				return
			}
			d.filter.Year = year
			d.refresh()
		}).
		AddDropDown("Month", months, 0, func(option string, index int) {
			d.filter.Month = time.Month(index) // 0 = All year
			d.refresh()
		}).
		AddInputField("Category", "", 20, nil, func(text string) {
			if text == "" {
				d.filter.Categories = nil
			} else {
				d.filter.Categories = []string{text}
			}
			d.refresh()
		})
	form.SetBorder(true).SetTitle(" Filter ")
	d.attachAutocomplete(form, "Category")
	return form
}

func (d *Dashboard) buildAddForm() *tview.Form {
	var date, category, amount, notes string

	form := tview.NewForm().
		AddInputField("Date", dateutils.ToISODate(time.Now()), 12, nil, func(text string) { date = text }).
		AddInputField("Category", "", 20, nil, func(text string) { category = text }).
		AddInputField("Amount", "", 12, tview.InputFieldFloat, func(text string) { amount = text }).
		AddInputField("Notes", "", 20, nil, func(text string) { notes = text })
	form.AddButton("Add", func() {
		d.addExpense(date, category, amount, notes)
	})
	form.SetBorder(true).SetTitle(" Add expense ")
	d.attachAutocomplete(form, "Category")
	return form
}

// attachAutocomplete wires fuzzy category suggestions onto an input field.
func (d *Dashboard) attachAutocomplete(form *tview.Form, label string) {
	item := form.GetFormItemByLabel(label)
	field, ok := item.(*tview.InputField)
	if !ok {
		return
	}
	field.SetAutocompleteFunc(func(current string) []string {
		if current == "" {
			return nil
		}
		if suggestion, ok := store.Suggest(current, d.known); ok {
			return []string{suggestion}
		}
		return nil
	})
}

func (d *Dashboard) addExpense(date, category, amount, notes string) {
	day, _, err := dateutils.ParseDate(date)
	if err != nil {
		d.setStatus(fmt.Sprintf("[red]invalid date: %s", date))
		return
	}

	entry := models.Expense{
		Date:     day,
		Category: models.NormalizeCategory(category),
		Amount:   models.ParseAmount(amount),
		Notes:    notes,
	}
	if err := d.led.Append(entry); err != nil {
		log.WithError(err).Error("Failed to append expense")
		d.setStatus(fmt.Sprintf("[red]%v", err))
		return
	}

	d.setStatus(fmt.Sprintf("[green]Added %s %s", entry.Category, entry.Amount.StringFixed(2)))
	d.refresh()
}

func (d *Dashboard) setStatus(msg string) {
	d.statusView.SetText(msg)
}

// refresh re-reads the ledger, applies the current filter and redraws all
// panes.
func (d *Dashboard) refresh() {
	expenses, err := d.led.Load()
	if err != nil {
		d.setStatus(fmt.Sprintf("[red]%v", err))
		return
	}
	filtered := report.Apply(expenses, d.filter)

	d.renderKPIs(filtered)
	d.renderCategories(filtered)
	d.renderEntries(filtered)
}

func (d *Dashboard) renderKPIs(expenses []models.Expense) {
	s := report.Summarize(expenses)

	maxDay := s.MaxDay.StringFixed(2)
	if !s.MaxDayDate.IsZero() {
		maxDay = fmt.Sprintf("%s (%s)", maxDay, s.MaxDayDate.Format("2006-01-02"))
	}

	d.kpiView.SetText(fmt.Sprintf(
		"[yellow]%s[-]\n\nTotal spend:   %s\nDaily average: %s\nMax day:       %s\nRecords:       %d",
		d.filter.PeriodLabel(),
		s.Total.StringFixed(2),
		s.DailyAverage.StringFixed(2),
		maxDay,
		s.Count,
	))
}

func (d *Dashboard) renderCategories(expenses []models.Expense) {
	d.catTable.Clear()
	for i, header := range []string{"Category", "Total"} {
		d.catTable.SetCell(0, i, tview.NewTableCell(fmt.Sprintf("[yellow]%s", header)).SetSelectable(false))
	}
	for i, c := range report.ByCategory(expenses) {
		d.catTable.SetCell(i+1, 0, tview.NewTableCell(c.Category))
		d.catTable.SetCell(i+1, 1, tview.NewTableCell(c.Total.StringFixed(2)).SetAlign(tview.AlignRight))
	}
}

func (d *Dashboard) renderEntries(expenses []models.Expense) {
	d.entryTable.Clear()
	for i, header := range []string{"Date", "Category", "Amount", "Notes"} {
		d.entryTable.SetCell(0, i, tview.NewTableCell(fmt.Sprintf("[yellow]%s", header)).SetSelectable(false))
	}
	for i, e := range expenses {
		d.entryTable.SetCell(i+1, 0, tview.NewTableCell(e.Day()))
		d.entryTable.SetCell(i+1, 1, tview.NewTableCell(e.Category))
		d.entryTable.SetCell(i+1, 2, tview.NewTableCell(e.Amount.StringFixed(2)).SetAlign(tview.AlignRight))
		d.entryTable.SetCell(i+1, 3, tview.NewTableCell(e.Notes))
	}
}
