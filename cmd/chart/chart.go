// Package chart handles the chart rendering command
package chart

import (
	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/charts"
	"github.com/AbuSaud44/expense-dash/internal/fileutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/spf13/cobra"
)

var (
	chartType string
	output    string
)

// Cmd represents the chart command
var Cmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a chart of the filtered period to a PNG file",
	Long: `Render a bar chart of per-day totals or a pie chart of per-category
totals for the filtered period.`,
	Run: chartFunc,
}

func chartFunc(cmd *cobra.Command, args []string) {
	filter, err := root.BuildFilter()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	expenses, err := ledger.New(root.DataFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	filtered := report.Apply(expenses, filter)

	opts := charts.Options{
		Width:  root.Cfg.Charts.Width,
		Height: root.Cfg.Charts.Height,
	}

	var png []byte
	switch chartType {
	case "bar":
		png, err = charts.DailyBarPNG(report.ByDay(filtered), opts)
	case "pie":
		png, err = charts.CategoryPiePNG(report.ByCategory(filtered), opts)
	default:
		root.Log.Fatalf("Unknown chart type: %s (must be 'bar' or 'pie')", chartType)
	}
	if err != nil {
		root.Log.Fatalf("Error rendering chart: %v", err)
	}

	if err := fileutils.WriteFile(output, png, 0o644); err != nil {
		root.Log.Fatalf("Error writing chart file: %v", err)
	}
	root.Log.Infof("Wrote %s chart to %s", chartType, output)
}

func init() {
	Cmd.Flags().StringVarP(&chartType, "type", "t", "bar", "Chart type: bar (per day) or pie (per category)")
	Cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "Output PNG file")
}
