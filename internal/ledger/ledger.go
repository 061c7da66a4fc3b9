// Package ledger reads and writes the flat-file expense ledger.
//
// The ledger is a plain CSV file with a `date,category,amount,notes` header.
// Every operation re-reads the entire file; there is no caching or locking,
// which is fine for a single-user tool and keeps the file hand-editable.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/fileutils"
	"github.com/AbuSaud44/expense-dash/internal/logging"
	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// Global CSV delimiter - can be configured via centralized config
var Delimiter rune = ','

// Header is the first line of a freshly initialized ledger file.
const Header = "date,category,amount,notes"

// SetDelimiter allows setting the delimiter for ledger CSV files
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Ledger provides access to one expense ledger file.
type Ledger struct {
	Path string
}

// New returns a Ledger backed by the given CSV file path.
func New(path string) *Ledger {
	return &Ledger{Path: path}
}

// Init creates the ledger file with a header line if it does not exist yet.
// A zero-byte file is treated the same as a missing one.
func (l *Ledger) Init() error {
	if info, err := os.Stat(l.Path); err == nil && !info.IsDir() && info.Size() > 0 {
		return nil
	}

	log.WithField(logging.FieldFile, l.Path).Info("Ledger file missing, creating empty ledger")
	if err := fileutils.WriteFile(l.Path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("error initializing ledger file: %w", err)
	}
	return nil
}

// Load reads the whole ledger file into memory. A missing file is created
// empty rather than reported as an error. Rows with an unparsable amount get
// a zero amount; rows with an unparsable date are skipped with a warning;
// blank categories become the default category.
func (l *Ledger) Load() ([]models.Expense, error) {
	if err := l.Init(); err != nil {
		return nil, err
	}

	file, err := os.Open(l.Path)
	if err != nil {
		log.WithError(err).Error("Failed to open ledger file")
		return nil, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []models.ExpenseRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		log.WithError(err).Error("Failed to parse ledger file")
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}

	expenses := make([]models.Expense, 0, len(rows))
	for i, row := range rows {
		date, _, err := dateutils.ParseDate(row.Date)
		if err != nil {
			log.WithFields(logrus.Fields{
				logging.FieldRow:  i + 2, // header is line 1
				logging.FieldDate: row.Date,
			}).Warn("Skipping row with unparsable date")
			continue
		}

		expenses = append(expenses, models.Expense{
			Date:     date,
			Category: models.NormalizeCategory(row.Category),
			Amount:   models.ParseAmount(row.Amount),
			Notes:    row.Notes,
		})
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  l.Path,
		logging.FieldCount: len(expenses),
	}).Debug("Loaded ledger")

	return expenses, nil
}

// Save rewrites the whole ledger file from the given entries, sorted by date
// so the file stays chronological regardless of insertion order.
func (l *Ledger) Save(expenses []models.Expense) error {
	if expenses == nil {
		return fmt.Errorf("cannot write nil expenses to ledger")
	}

	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]models.ExpenseRow, len(sorted))
	for i, e := range sorted {
		rows[i] = e.Row()
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(l.Path)); err != nil {
		return fmt.Errorf("error creating ledger directory: %w", err)
	}

	file, err := os.Create(l.Path)
	if err != nil {
		log.WithError(err).Error("Failed to create ledger file")
		return fmt.Errorf("error creating ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal expenses to CSV")
		return fmt.Errorf("error writing ledger data: %w", err)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  l.Path,
		logging.FieldCount: len(rows),
	}).Info("Wrote ledger file")

	return nil
}

// Append re-reads the ledger, appends the given entries and rewrites the file.
func (l *Ledger) Append(entries ...models.Expense) error {
	expenses, err := l.Load()
	if err != nil {
		return err
	}
	expenses = append(expenses, entries...)
	return l.Save(expenses)
}
