// Package export handles the export command
package export

import (
	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/charts"
	"github.com/AbuSaud44/expense-dash/internal/export"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/models"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered period as CSV or as a PDF report",
	Long: `Export the filtered ledger entries as a CSV file, or compose a
three-page PDF report with the summary, the per-day bar chart and the
per-category pie chart.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	filter, err := root.BuildFilter()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	expenses, err := ledger.New(root.DataFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	filtered := report.Apply(expenses, filter)
	if filtered == nil {
		filtered = []models.Expense{}
	}

	out := output
	if out == "" {
		out = export.DefaultFilename(filter, format)
	}

	switch format {
	case "csv":
		err = export.WriteCSV(filtered, out)
	case "pdf":
		opts := charts.Options{
			Width:  root.Cfg.Charts.Width,
			Height: root.Cfg.Charts.Height,
		}
		err = export.WritePDF(filtered, filter, opts, out)
	default:
		root.Log.Fatalf("Unknown export format: %s (must be 'csv' or 'pdf')", format)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting: %v", err)
	}

	root.Log.Infof("Exported %d entries to %s", len(filtered), out)
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "t", "csv", "Export format: csv or pdf")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to expenses_<year>_<month>.<ext>)")
}
