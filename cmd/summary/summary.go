// Package summary handles the summary command
package summary

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/spf13/cobra"
)

var byDay bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, averages and breakdowns for the filtered period",
	Long: `Show the headline statistics (total spend, daily average, max day,
record count) and the per-category breakdown for the filtered period.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	filter, err := root.BuildFilter()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	expenses, err := ledger.New(root.DataFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	filtered := report.Apply(expenses, filter)
	s := report.Summarize(filtered)

	fmt.Printf("Expenses - %s\n\n", filter.PeriodLabel())
	fmt.Printf("Total spend:   %s\n", s.Total.StringFixed(2))
	fmt.Printf("Daily average: %s\n", s.DailyAverage.StringFixed(2))
	if s.MaxDayDate.IsZero() {
		fmt.Printf("Max day:       %s\n", s.MaxDay.StringFixed(2))
	} else {
		fmt.Printf("Max day:       %s (%s)\n", s.MaxDay.StringFixed(2), s.MaxDayDate.Format("2006-01-02"))
	}
	fmt.Printf("Records:       %d\n", s.Count)

	if len(filtered) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if byDay {
		fmt.Fprintln(w, "\nDAY\tTOTAL")
		for _, d := range report.ByDay(filtered) {
			fmt.Fprintf(w, "%s\t%s\n", d.Day.Format("2006-01-02"), d.Total.StringFixed(2))
		}
	} else {
		fmt.Fprintln(w, "\nCATEGORY\tTOTAL")
		for _, c := range report.ByCategory(filtered) {
			fmt.Fprintf(w, "%s\t%s\n", c.Category, c.Total.StringFixed(2))
		}
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}

func init() {
	Cmd.Flags().BoolVar(&byDay, "by-day", false, "Break down by day instead of by category")
}
