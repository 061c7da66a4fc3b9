package report

import (
	"sort"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/shopspring/decimal"
)

// Summary holds the headline statistics for a set of entries.
type Summary struct {
	// Total is the sum of all amounts.
	Total decimal.Decimal
	// DailyAverage is the mean of the per-day sums, not the per-entry mean.
	DailyAverage decimal.Decimal
	// MaxDay is the largest per-day sum and MaxDayDate the day it fell on.
	MaxDay     decimal.Decimal
	MaxDayDate time.Time
	// Count is the number of entries.
	Count int
}

// DayTotal is one day's summed spend.
type DayTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

// CategoryTotal is one category's summed spend.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summarize computes the headline statistics for the given entries.
// An empty input yields a zero summary.
func Summarize(expenses []models.Expense) Summary {
	s := Summary{
		Total:        decimal.Zero,
		DailyAverage: decimal.Zero,
		MaxDay:       decimal.Zero,
		Count:        len(expenses),
	}
	if len(expenses) == 0 {
		return s
	}

	days := ByDay(expenses)
	for _, d := range days {
		s.Total = s.Total.Add(d.Total)
		if d.Total.GreaterThan(s.MaxDay) || s.MaxDayDate.IsZero() {
			s.MaxDay = d.Total
			s.MaxDayDate = d.Day
		}
	}
	s.DailyAverage = s.Total.Div(decimal.NewFromInt(int64(len(days)))).Round(2)

	return s
}

// ByDay groups entries by calendar day and sums the amounts, returning the
// days in chronological order.
func ByDay(expenses []models.Expense) []DayTotal {
	totals := make(map[string]decimal.Decimal)
	dates := make(map[string]time.Time)
	for _, e := range expenses {
		key := e.Day()
		totals[key] = totals[key].Add(e.Amount)
		if _, ok := dates[key]; !ok {
			dates[key] = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	out := make([]DayTotal, 0, len(totals))
	for key, total := range totals {
		out = append(out, DayTotal{Day: dates[key], Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// ByCategory groups entries by category and sums the amounts, returning the
// categories by descending total, ties broken by name.
func ByCategory(expenses []models.Expense) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
