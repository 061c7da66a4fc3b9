package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain value", "42.50", "42.5"},
		{"comma decimal separator", "42,50", "42.5"},
		{"currency symbol", "$19.99", "19.99"},
		{"euro symbol", "€7.00", "7"},
		{"thousand separator", "1'250.00", "1250"},
		{"surrounding spaces", "  12.00  ", "12"},
		{"negative value", "-3.25", "-3.25"},
		{"garbage coerced to zero", "abc", "0"},
		{"empty coerced to zero", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Food", NormalizeCategory("Food"))
	assert.Equal(t, "Food", NormalizeCategory("  Food  "))
	assert.Equal(t, DefaultCategory, NormalizeCategory(""))
	assert.Equal(t, DefaultCategory, NormalizeCategory("   "))
}

func TestExpenseRow(t *testing.T) {
	e := Expense{
		Date:     time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Category: "Transport",
		Amount:   decimal.NewFromFloat(12.5),
		Notes:    "bus pass",
	}

	row := e.Row()
	assert.Equal(t, "2025-07-14", row.Date)
	assert.Equal(t, "Transport", row.Category)
	assert.Equal(t, "12.50", row.Amount)
	assert.Equal(t, "bus pass", row.Notes)

	assert.Equal(t, "2025-07-14", e.Day())
}
