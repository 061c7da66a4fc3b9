// Package add handles the add-expense command
package add

import (
	"time"

	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/models"
	"github.com/AbuSaud44/expense-dash/internal/store"

	"github.com/spf13/cobra"
)

var (
	date     string
	category string
	amount   string
	note     string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense entry",
	Long:  `Record a new dated expense entry in the ledger file.`,
	Run:   addFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	day, _, err := dateutils.ParseDate(date)
	if err != nil {
		root.Log.Fatalf("Invalid date: %v", err)
	}

	entry := models.Expense{
		Date:     day,
		Category: models.NormalizeCategory(category),
		Amount:   models.ParseAmount(amount),
		Notes:    note,
	}

	// Nudge towards a known category when the given one is new
	suggestNearby(entry.Category)

	led := ledger.New(root.DataFile())
	if err := led.Append(entry); err != nil {
		root.Log.Fatalf("Error recording expense: %v", err)
	}

	root.Log.Infof("Recorded %s %s on %s", entry.Category, entry.Amount.StringFixed(2), entry.Day())
}

func suggestNearby(category string) {
	categories, err := store.NewCategoryStore(root.Cfg.CategoriesFile()).Load()
	if err != nil {
		root.Log.Warnf("Could not load category list: %v", err)
		return
	}

	names := store.Names(categories)
	for _, name := range names {
		if name == category {
			return
		}
	}
	if suggestion, ok := store.Suggest(category, names); ok && suggestion != category {
		root.Log.Infof("Category %q is new; did you mean %q?", category, suggestion)
	}
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", dateutils.ToISODate(time.Now()), "Entry date (e.g. 2025-08-25)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Expense category")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0.00", "Amount spent")
	Cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
}
