// Package categories handles the categories command
package categories

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/report"
	"github.com/AbuSaud44/expense-dash/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List known categories with spend against budget",
	Long: `List the known categories from the category store together with the
spend in the filtered period and, where a monthly budget is configured, the
remaining budget.`,
	Run: categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	filter, err := root.BuildFilter()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	known, err := store.NewCategoryStore(root.Cfg.CategoriesFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading category list: %v", err)
	}

	expenses, err := ledger.New(root.DataFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	filtered := report.Apply(expenses, filter)

	spent := make(map[string]decimal.Decimal)
	for _, c := range report.ByCategory(filtered) {
		spent[c.Category] = c.Total
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSPENT\tBUDGET\tREMAINING")
	for _, c := range known {
		total := spent[c.Name]
		budget, remaining := "-", "-"
		if !c.Budget.IsZero() {
			budget = c.Budget.StringFixed(2)
			remaining = c.Budget.Sub(total).StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, total.StringFixed(2), budget, remaining)
		delete(spent, c.Name)
	}
	// Categories seen in the ledger but absent from the store
	for _, c := range report.ByCategory(filtered) {
		if total, ok := spent[c.Category]; ok {
			fmt.Fprintf(w, "%s\t%s\t-\t-\n", c.Category, total.StringFixed(2))
		}
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
