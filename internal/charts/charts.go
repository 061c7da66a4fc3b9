// Package charts renders the per-day bar chart and per-category pie chart
// as PNG images.
package charts

import (
	"bytes"
	"fmt"

	"github.com/AbuSaud44/expense-dash/internal/report"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing to chart; callers turn it
// into a "no data" message instead of an empty image.
var ErrNoData = fmt.Errorf("no data to chart")

// Options controls the rendered image size.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions match the dashboard's default chart size.
var DefaultOptions = Options{Width: 800, Height: 400}

func (o Options) normalize() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	return o
}

// DailyBarPNG renders a bar chart of per-day totals.
func DailyBarPNG(days []report.DayTotal, opts Options) ([]byte, error) {
	if len(days) == 0 {
		return nil, ErrNoData
	}
	opts = opts.normalize()

	bars := make([]chart.Value, len(days))
	for i, d := range days {
		value, _ := d.Total.Float64()
		bars[i] = chart.Value{
			Value: value,
			Label: d.Day.Format("01-02"),
		}
	}

	barWidth := opts.Width / (2 * len(bars))
	if barWidth < 2 {
		barWidth = 2
	}

	graph := chart.BarChart{
		Title:    "Expenses by day",
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: barWidth,
		Bars:     bars,
		XAxis: chart.Style{
			TextRotationDegrees: 90,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// CategoryPiePNG renders a pie chart of per-category totals.
func CategoryPiePNG(categories []report.CategoryTotal, opts Options) ([]byte, error) {
	if len(categories) == 0 {
		return nil, ErrNoData
	}
	opts = opts.normalize()

	values := make([]chart.Value, len(categories))
	for i, c := range categories {
		value, _ := c.Total.Float64()
		values[i] = chart.Value{
			Value: value,
			Label: c.Category,
		}
	}

	graph := chart.PieChart{
		Title:  "Category breakdown",
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering pie chart: %w", err)
	}
	return buf.Bytes(), nil
}
