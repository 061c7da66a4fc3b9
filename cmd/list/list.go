// Package list handles the list command
package list

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries matching the current filter",
	Long:  `List ledger entries, optionally filtered by year, month and category.`,
	Run:   listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	filter, err := root.BuildFilter()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	expenses, err := ledger.New(root.DataFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	filtered := report.Apply(expenses, filter)

	if len(filtered) == 0 {
		fmt.Println("No entries for current filters.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tNOTES")
	for _, e := range filtered {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Day(), e.Category, e.Amount.StringFixed(2), e.Notes)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
