package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AbuSaud44/expense-dash/cmd/add"
	"github.com/AbuSaud44/expense-dash/cmd/categories"
	"github.com/AbuSaud44/expense-dash/cmd/chart"
	"github.com/AbuSaud44/expense-dash/cmd/dashboard"
	"github.com/AbuSaud44/expense-dash/cmd/export"
	"github.com/AbuSaud44/expense-dash/cmd/list"
	"github.com/AbuSaud44/expense-dash/cmd/recur"
	"github.com/AbuSaud44/expense-dash/cmd/root"
	"github.com/AbuSaud44/expense-dash/cmd/summary"
	"github.com/AbuSaud44/expense-dash/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on all existing and future loggers
	logging.SetAllLogLevels(logLevel)

	// 4. Now that logging is properly configured, initialize root command
	root.Init()

	// 5. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(chart.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(recur.Cmd)
	root.Cmd.AddCommand(dashboard.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
