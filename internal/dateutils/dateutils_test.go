package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2025-07-14", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)},
		{"14.07.2025", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)},
		{"2025/07/14", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)},
		{"Jul 14, 2025", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)},
		{"  2025-07-14  ", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _, err := ParseDate(tt.input)
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}

	_, _, err := ParseDate("not a date")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	d := time.Date(2025, 1, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-01-03", ToISODate(d))
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Month
	}{
		{"", 0},
		{"0", 0},
		{"all", 0},
		{"All", 0},
		{"7", time.July},
		{"12", time.December},
		{"July", time.July},
		{"july", time.July},
		{"jul", time.July},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseMonth("13")
	assert.Error(t, err)
	_, err = ParseMonth("Smarch")
	assert.Error(t, err)
}
