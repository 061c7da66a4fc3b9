// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/AbuSaud44/expense-dash/internal/config"
	"github.com/AbuSaud44/expense-dash/internal/dashboard"
	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/export"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/recur"
	"github.com/AbuSaud44/expense-dash/internal/report"
	"github.com/AbuSaud44/expense-dash/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	File       string
	Year       int
	Month      string
	Categories []string
	Output     string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-dash",
		Short: "A personal expense ledger with summaries, charts and exports.",
		Long: `expense-dash records dated expense entries in a plain CSV file and
renders summaries, charts and CSV/PDF reports filterable by year, month and
category.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-dash!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Cfg = config.GetGlobalConfig()
			Log = config.ConfigureLogging(Cfg)

			// Propagate the configured logger to all packages
			ledger.SetLogger(Log)
			export.SetLogger(Log)
			store.SetLogger(Log)
			recur.SetLogger(Log)
			dashboard.SetLogger(Log)

			if delim := Cfg.CSV.Delimiter; delim != "" {
				ledger.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Ledger CSV file (defaults to the configured data file)")
	Cmd.PersistentFlags().IntVarP(&SharedFlags.Year, "year", "y", 0, "Filter by year (0 = all years)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Month, "month", "m", "", "Filter by month, name or number (empty = whole year)")
	Cmd.PersistentFlags().StringSliceVarP(&SharedFlags.Categories, "category", "c", nil, "Filter by category (repeatable)")
}

// DataFile resolves the ledger file path from the --file flag or the
// configuration.
func DataFile() string {
	if SharedFlags.File != "" {
		return SharedFlags.File
	}
	return Cfg.DataFile()
}

// BuildFilter translates the shared flags into a report filter.
func BuildFilter() (report.Filter, error) {
	month, err := dateutils.ParseMonth(SharedFlags.Month)
	if err != nil {
		return report.Filter{}, fmt.Errorf("invalid --month value: %w", err)
	}
	return report.Filter{
		Year:       SharedFlags.Year,
		Month:      month,
		Categories: SharedFlags.Categories,
	}, nil
}
