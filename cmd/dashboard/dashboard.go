// Package dashboard handles the interactive dashboard command
package dashboard

import (
	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/internal/dashboard"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive terminal dashboard",
	Long: `Open the interactive terminal dashboard with filter and add-expense
forms. Ctrl+Q quits.`,
	Run: dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	categories, err := store.NewCategoryStore(root.Cfg.CategoriesFile()).Load()
	if err != nil {
		root.Log.Warnf("Could not load category list: %v", err)
	}

	led := ledger.New(root.DataFile())
	d := dashboard.New(led, store.Names(categories))
	if err := d.Run(); err != nil {
		root.Log.Fatalf("Dashboard error: %v", err)
	}
}
