package charts

import (
	"testing"
	"time"

	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func day(date string, total float64) report.DayTotal {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return report.DayTotal{Day: d, Total: decimal.NewFromFloat(total)}
}

func TestDailyBarPNG(t *testing.T) {
	days := []report.DayTotal{
		day("2025-07-01", 30),
		day("2025-07-02", 6),
		day("2025-07-04", 9),
	}

	png, err := DailyBarPNG(days, DefaultOptions)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(png), 4)
	assert.Equal(t, pngMagic, png[:4], "output should be a PNG image")
}

func TestDailyBarPNGEmpty(t *testing.T) {
	_, err := DailyBarPNG(nil, DefaultOptions)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCategoryPiePNG(t *testing.T) {
	categories := []report.CategoryTotal{
		{Category: "Food", Total: decimal.NewFromInt(120)},
		{Category: "Transport", Total: decimal.NewFromInt(45)},
	}

	png, err := CategoryPiePNG(categories, Options{Width: 500, Height: 500})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(png), 4)
	assert.Equal(t, pngMagic, png[:4], "output should be a PNG image")
}

func TestCategoryPiePNGEmpty(t *testing.T) {
	_, err := CategoryPiePNG(nil, DefaultOptions)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{}.normalize()
	assert.Equal(t, DefaultOptions.Width, opts.Width)
	assert.Equal(t, DefaultOptions.Height, opts.Height)
}
