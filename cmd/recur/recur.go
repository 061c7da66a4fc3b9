// Package recur handles the recurring-expense command
package recur

import (
	"time"

	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/recur"

	"github.com/spf13/cobra"
)

var through string

// Cmd represents the recur command
var Cmd = &cobra.Command{
	Use:   "recur",
	Short: "Manage recurring expenses",
	Long:  `Expand recurring expense rules into concrete ledger entries.`,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Materialize recurring expenses into the ledger",
	Long: `Expand every recurring rule from its start date through the given
date and append the occurrences not already present in the ledger.`,
	Run: applyFunc,
}

func applyFunc(cmd *cobra.Command, args []string) {
	end := time.Now()
	if through != "" {
		parsed, _, err := dateutils.ParseDate(through)
		if err != nil {
			root.Log.Fatalf("Invalid --through date: %v", err)
		}
		end = parsed
	}

	rules, err := recur.LoadRules(root.Cfg.RecurringFile())
	if err != nil {
		root.Log.Fatalf("Error loading recurring rules: %v", err)
	}
	if len(rules) == 0 {
		root.Log.Infof("No recurring rules found at %s", root.Cfg.RecurringFile())
		return
	}

	led := ledger.New(root.DataFile())
	added, err := recur.Apply(led, rules, end)
	if err != nil {
		root.Log.Fatalf("Error applying recurring rules: %v", err)
	}
	root.Log.Infof("Added %d recurring entries through %s", added, dateutils.ToISODate(end))
}

func init() {
	applyCmd.Flags().StringVar(&through, "through", "", "Expand occurrences through this date (defaults to today)")
	Cmd.AddCommand(applyCmd)
}
