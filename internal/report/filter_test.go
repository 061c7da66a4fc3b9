package report

import (
	"testing"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(date string, category string, amount float64) models.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		Date:     d,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
	}
}

var sample = []models.Expense{
	entry("2024-12-31", "Food", 20),
	entry("2025-07-01", "Food", 12.50),
	entry("2025-07-01", "Transport", 2.80),
	entry("2025-07-15", "Food", 8),
	entry("2025-08-02", "Groceries", 45),
}

func TestApplyYear(t *testing.T) {
	got := Apply(sample, Filter{Year: 2025})
	assert.Len(t, got, 4)

	got = Apply(sample, Filter{Year: 2024})
	assert.Len(t, got, 1)

	// Zero year means all years
	got = Apply(sample, Filter{})
	assert.Len(t, got, 5)
}

func TestApplyMonth(t *testing.T) {
	got := Apply(sample, Filter{Year: 2025, Month: time.July})
	assert.Len(t, got, 3)

	got = Apply(sample, Filter{Year: 2025, Month: time.August})
	assert.Len(t, got, 1)

	got = Apply(sample, Filter{Year: 2025, Month: time.January})
	assert.Empty(t, got)
}

func TestApplyCategories(t *testing.T) {
	got := Apply(sample, Filter{Year: 2025, Categories: []string{"Food"}})
	assert.Len(t, got, 2)

	// Case-insensitive match
	got = Apply(sample, Filter{Year: 2025, Categories: []string{"food"}})
	assert.Len(t, got, 2)

	got = Apply(sample, Filter{Year: 2025, Categories: []string{"Food", "Transport"}})
	assert.Len(t, got, 3)

	got = Apply(sample, Filter{Year: 2025, Categories: []string{"Rent"}})
	assert.Empty(t, got)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "All years", Filter{}.PeriodLabel())
	assert.Equal(t, "Year 2025", Filter{Year: 2025}.PeriodLabel())
	assert.Equal(t, "July 2025", Filter{Year: 2025, Month: time.July}.PeriodLabel())
}
