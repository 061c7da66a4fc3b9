package recur

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesMissingFile(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "recurring.yaml"))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recurring.yaml")
	content := `rules:
  - name: Rent
    category: Housing
    amount: 1200
    start: 2025-01-01
    rrule: FREQ=MONTHLY;BYMONTHDAY=1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Rent", rules[0].Name)
	assert.Equal(t, "Housing", rules[0].Category)
	assert.True(t, decimal.NewFromInt(1200).Equal(rules[0].Amount))
}

func TestExpandMonthly(t *testing.T) {
	rule := Rule{
		Name:     "Rent",
		Category: "Housing",
		Amount:   decimal.NewFromInt(1200),
		Start:    "2025-01-01",
		RRule:    "FREQ=MONTHLY;BYMONTHDAY=1",
	}

	through := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	entries, err := Expand(rule, through)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "2025-01-01", entries[0].Day())
	assert.Equal(t, "2025-02-01", entries[1].Day())
	assert.Equal(t, "2025-03-01", entries[2].Day())
	for _, e := range entries {
		assert.Equal(t, "Housing", e.Category)
		assert.Equal(t, "Rent", e.Notes, "rule name should fill empty notes")
		assert.True(t, decimal.NewFromInt(1200).Equal(e.Amount))
	}
}

func TestExpandInvalid(t *testing.T) {
	_, err := Expand(Rule{Name: "bad", Start: "garbage", RRule: "FREQ=MONTHLY"}, time.Now())
	assert.Error(t, err)

	_, err = Expand(Rule{Name: "bad", Start: "2025-01-01", RRule: "NONSENSE"}, time.Now())
	assert.Error(t, err)
}

func TestApplyDeduplicates(t *testing.T) {
	led := ledger.New(filepath.Join(t.TempDir(), "expenses.csv"))

	// Seed the ledger with the January occurrence already present
	require.NoError(t, led.Append(models.Expense{
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Category: "Housing",
		Amount:   decimal.NewFromInt(1200),
		Notes:    "Rent",
	}))

	rules := []Rule{{
		Name:     "Rent",
		Category: "Housing",
		Amount:   decimal.NewFromInt(1200),
		Start:    "2025-01-01",
		RRule:    "FREQ=MONTHLY;BYMONTHDAY=1",
	}}

	through := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	added, err := Apply(led, rules, through)
	require.NoError(t, err)
	assert.Equal(t, 2, added, "only February and March should be added")

	// A second apply adds nothing
	added, err = Apply(led, rules, through)
	require.NoError(t, err)
	assert.Zero(t, added)

	expenses, err := led.Load()
	require.NoError(t, err)
	assert.Len(t, expenses, 3)
}
