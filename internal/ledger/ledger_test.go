package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesMissingFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "expenses.csv")

	led := New(path)
	expenses, err := led.Load()
	require.NoError(t, err)
	assert.Empty(t, expenses)

	// The file must now exist with just the header
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestLoadCoercesMalformedRows(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "expenses.csv")

	csvContent := `date,category,amount,notes
2025-07-01,Food,12.50,lunch
2025-07-02,,abc,no category and bad amount
not-a-date,Transport,5.00,skipped
2025-07-03,Groceries,30.00,
`
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0o600))

	expenses, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, expenses, 3, "row with unparsable date should be skipped")

	assert.Equal(t, "Food", expenses[0].Category)
	assert.Equal(t, "12.5", expenses[0].Amount.String())

	assert.Equal(t, models.DefaultCategory, expenses[1].Category)
	assert.True(t, expenses[1].Amount.IsZero(), "unparsable amount should be coerced to zero")

	assert.Equal(t, "Groceries", expenses[2].Category)
}

func TestSaveAndReload(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "expenses.csv")

	led := New(path)
	entries := []models.Expense{
		{
			Date:     time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			Category: "Transport",
			Amount:   decimal.NewFromFloat(2.80),
			Notes:    "tram",
		},
		{
			Date:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Category: "Food",
			Amount:   decimal.NewFromFloat(12.50),
			Notes:    "lunch",
		},
	}
	require.NoError(t, led.Save(entries))

	reloaded, err := led.Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)

	// Save sorts chronologically
	assert.Equal(t, "2025-07-01", reloaded[0].Day())
	assert.Equal(t, "Food", reloaded[0].Category)
	assert.Equal(t, "12.5", reloaded[0].Amount.String())
	assert.Equal(t, "2025-07-02", reloaded[1].Day())
}

func TestSaveNil(t *testing.T) {
	led := New(filepath.Join(t.TempDir(), "expenses.csv"))
	assert.Error(t, led.Save(nil))
}

func TestAppend(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "expenses.csv")

	led := New(path)
	entry := models.Expense{
		Date:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Category: "Food",
		Amount:   decimal.NewFromFloat(9.90),
		Notes:    "",
	}
	require.NoError(t, led.Append(entry))
	require.NoError(t, led.Append(models.Expense{
		Date:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Category: "Transport",
		Amount:   decimal.NewFromFloat(2.80),
	}))

	expenses, err := led.Load()
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Transport", expenses[0].Category, "earlier entry should sort first")
	assert.Equal(t, "Food", expenses[1].Category)
}
