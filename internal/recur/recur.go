// Package recur expands recurring expense rules into concrete ledger
// entries. Rules live in a YAML file and use RRULE recurrence syntax
// (e.g. FREQ=MONTHLY;BYMONTHDAY=1).
package recur

import (
	"fmt"
	"os"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/dateutils"
	"github.com/AbuSaud44/expense-dash/internal/ledger"
	"github.com/AbuSaud44/expense-dash/internal/logging"
	"github.com/AbuSaud44/expense-dash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rule describes one recurring expense.
type Rule struct {
	Name     string          `yaml:"name"`
	Category string          `yaml:"category"`
	Amount   decimal.Decimal `yaml:"amount"`
	Notes    string          `yaml:"notes,omitempty"`
	// Start is the first date the rule applies, in YYYY-MM-DD form.
	Start string `yaml:"start"`
	// RRule is the recurrence in RRULE syntax, without the DTSTART part.
	RRule string `yaml:"rrule"`
}

// LoadRules reads the recurring rules file. A missing file yields no rules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, path).Debug("No recurring rules file found")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading recurring rules file: %w", err)
	}

	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing recurring rules file: %w", err)
	}
	return doc.Rules, nil
}

// Expand materializes the rule's occurrences from its start date through the
// given date (inclusive).
func Expand(r Rule, through time.Time) ([]models.Expense, error) {
	start, _, err := dateutils.ParseDate(r.Start)
	if err != nil {
		return nil, fmt.Errorf("rule %q has invalid start date: %w", r.Name, err)
	}

	rr, err := rrule.StrToRRule(r.RRule)
	if err != nil {
		return nil, fmt.Errorf("rule %q has invalid recurrence: %w", r.Name, err)
	}
	rr.DTStart(start)

	notes := r.Notes
	if notes == "" {
		notes = r.Name
	}

	var out []models.Expense
	for _, occurrence := range rr.Between(start, through, true) {
		out = append(out, models.Expense{
			Date:     occurrence,
			Category: models.NormalizeCategory(r.Category),
			Amount:   r.Amount,
			Notes:    notes,
		})
	}
	return out, nil
}

// Apply expands all rules through the given date and appends the occurrences
// that are not already present in the ledger. An entry counts as present when
// a ledger row with the same day, category and notes exists. Returns the
// number of entries added.
func Apply(led *ledger.Ledger, rules []Rule, through time.Time) (int, error) {
	existing, err := led.Load()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	key := func(e models.Expense) string {
		return e.Day() + "\x00" + e.Category + "\x00" + e.Notes
	}
	for _, e := range existing {
		seen[key(e)] = true
	}

	var added []models.Expense
	for _, r := range rules {
		occurrences, err := Expand(r, through)
		if err != nil {
			return 0, err
		}
		for _, e := range occurrences {
			if seen[key(e)] {
				continue
			}
			seen[key(e)] = true
			added = append(added, e)
		}
		log.WithFields(logrus.Fields{
			logging.FieldRule:  r.Name,
			logging.FieldCount: len(occurrences),
		}).Debug("Expanded recurring rule")
	}

	if len(added) == 0 {
		return 0, nil
	}
	if err := led.Append(added...); err != nil {
		return 0, err
	}
	return len(added), nil
}
