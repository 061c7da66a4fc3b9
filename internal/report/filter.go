// Package report filters the in-memory expense table and computes the
// aggregate statistics shown by the summary, chart and export surfaces.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/models"
)

// Filter selects a subset of ledger entries. The zero value selects
// everything.
type Filter struct {
	// Year restricts entries to one calendar year. Zero means all years.
	Year int
	// Month restricts entries to one month within Year. Zero means the
	// whole year.
	Month time.Month
	// Categories restricts entries to the named categories
	// (case-insensitive). Empty means all categories.
	Categories []string
}

// Apply returns the entries matching the filter, in the input order.
func Apply(expenses []models.Expense, f Filter) []models.Expense {
	matchCategory := func(c string) bool {
		if len(f.Categories) == 0 {
			return true
		}
		for _, want := range f.Categories {
			if strings.EqualFold(c, want) {
				return true
			}
		}
		return false
	}

	var out []models.Expense
	for _, e := range expenses {
		if f.Year != 0 && e.Date.Year() != f.Year {
			continue
		}
		if f.Month != 0 && e.Date.Month() != f.Month {
			continue
		}
		if !matchCategory(e.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// PeriodLabel renders the filter's time range for report titles, e.g.
// "July 2025", "Year 2025" or "All years".
func (f Filter) PeriodLabel() string {
	switch {
	case f.Year == 0:
		return "All years"
	case f.Month == 0:
		return fmt.Sprintf("Year %d", f.Year)
	default:
		return fmt.Sprintf("%s %d", f.Month, f.Year)
	}
}
