// Package export composes the CSV and PDF exports of a filtered ledger view.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AbuSaud44/expense-dash/internal/fileutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/logging"
	"github.com/AbuSaud44/expense-dash/internal/models"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultFilename builds the period-stamped export filename, e.g.
// "expenses_2025_July.csv" or "expenses_2025_all.csv".
func DefaultFilename(f report.Filter, ext string) string {
	year := "all"
	if f.Year != 0 {
		year = fmt.Sprintf("%d", f.Year)
	}
	month := "all"
	if f.Month != 0 {
		month = f.Month.String()
	}
	return fmt.Sprintf("expenses_%s_%s.%s", year, month, strings.TrimPrefix(ext, "."))
}

// WriteCSV writes the given entries to a CSV file in the same four-column
// layout as the ledger itself.
func WriteCSV(expenses []models.Expense, csvFile string) error {
	if expenses == nil {
		return fmt.Errorf("cannot export nil expenses")
	}

	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: csvFile,
		logging.FieldCount:      len(expenses),
	}).Info("Exporting expenses to CSV file")

	rows := make([]models.ExpenseRow, len(expenses))
	for i, e := range expenses {
		rows[i] = e.Row()
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return fmt.Errorf("error creating export directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = ledger.Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal expenses to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
