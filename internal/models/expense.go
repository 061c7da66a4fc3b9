// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to entries recorded without a category.
const DefaultCategory = "Uncategorized"

// ExpenseRow mirrors one line of the ledger CSV file. The amount is kept as
// raw text so that malformed values can be coerced instead of failing the
// whole load.
type ExpenseRow struct {
	Date     string `csv:"date"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
	Notes    string `csv:"notes"`
}

// Expense represents a single dated expense entry.
type Expense struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Notes    string
}

// ParseAmount parses a string amount to decimal.Decimal. Malformed input is
// coerced to zero rather than reported, matching the ledger's tolerance for
// hand-edited files.
func ParseAmount(amountStr string) decimal.Decimal {
	// Replace comma with dot for decimal separator
	amount := strings.ReplaceAll(amountStr, ",", ".")
	// Remove currency symbols, spaces and thousand separators
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// NormalizeCategory trims the category name and substitutes DefaultCategory
// for blank input.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// Day returns the ISO date string used as the grouping key for per-day
// aggregation.
func (e Expense) Day() string {
	return e.Date.Format("2006-01-02")
}

// Row converts the expense to its CSV representation.
func (e Expense) Row() ExpenseRow {
	return ExpenseRow{
		Date:     e.Date.Format("2006-01-02"),
		Category: e.Category,
		Amount:   e.Amount.StringFixed(2),
		Notes:    e.Notes,
	}
}
