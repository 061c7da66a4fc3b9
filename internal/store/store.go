// Package store provides functionality for storing and retrieving
// application data kept outside the ledger: the known category list with
// optional monthly budgets.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AbuSaud44/expense-dash/internal/fileutils"
	"github.com/AbuSaud44/expense-dash/internal/logging"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Category is a known expense category with an optional monthly budget.
// A zero budget means no budget is set.
type Category struct {
	Name   string          `yaml:"name"`
	Budget decimal.Decimal `yaml:"budget,omitempty"`
}

// CategoryStore manages loading and saving of the category list.
type CategoryStore struct {
	Path string
}

// NewCategoryStore creates a store backed by the given YAML file.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{Path: path}
}

// Load reads the category list. A missing file yields an empty list.
func (s *CategoryStore) Load() ([]Category, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, s.Path).Debug("No category file found")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading category file: %w", err)
	}

	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing category file: %w", err)
	}

	sort.Slice(doc.Categories, func(i, j int) bool {
		return doc.Categories[i].Name < doc.Categories[j].Name
	})
	return doc.Categories, nil
}

// Save writes the category list back to disk.
func (s *CategoryStore) Save(categories []Category) error {
	doc := struct {
		Categories []Category `yaml:"categories"`
	}{Categories: categories}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.Path)); err != nil {
		return err
	}
	if err := fileutils.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("error writing category file: %w", err)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  s.Path,
		logging.FieldCount: len(categories),
	}).Info("Saved category list")
	return nil
}

// Names returns just the category names.
func Names(categories []Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// Suggest fuzzy-matches the given name against the known category names and
// returns the closest one. The second return value is false when nothing
// matches at all.
func Suggest(name string, known []string) (string, bool) {
	if name == "" || len(known) == 0 {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(name, known)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
