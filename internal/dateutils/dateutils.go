// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.Join(strings.Fields(dateStr), " ")

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ParseMonth resolves a month given by number ("7") or by English name
// ("July", "jul"). Zero, an empty string or "all" selects the whole year.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") || s == "0" {
		return 0, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown month: %s", s)
}
