package export

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/AbuSaud44/expense-dash/internal/charts"
	"github.com/AbuSaud44/expense-dash/internal/fileutils"
	"github.com/AbuSaud44/expense-dash/internal/logging"
	"github.com/AbuSaud44/expense-dash/internal/models"
	"github.com/AbuSaud44/expense-dash/internal/report"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
)

// Page geometry for the embedded charts, in millimeters on A4.
const (
	chartMarginLeft = 15.0
	chartTop        = 40.0
	chartWidthMM    = 180.0
)

// WritePDF composes the three-page expense report: a summary page, the
// per-day bar chart and the per-category pie chart. Periods without data get
// placeholder text instead of charts.
func WritePDF(expenses []models.Expense, f report.Filter, chartOpts charts.Options, pdfFile string) error {
	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: pdfFile,
		logging.FieldCount:      len(expenses),
	}).Info("Exporting expense report to PDF file")

	summary := report.Summarize(expenses)

	pdf := fpdf.New("P", "mm", "A4", "")

	writeSummaryPage(pdf, f, summary)
	writeChartPage(pdf, "Expenses by day", func() ([]byte, error) {
		return charts.DailyBarPNG(report.ByDay(expenses), chartOpts)
	})
	writeChartPage(pdf, "Category breakdown", func() ([]byte, error) {
		return charts.CategoryPiePNG(report.ByCategory(expenses), chartOpts)
	})

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(pdfFile)); err != nil {
		return fmt.Errorf("error creating export directory: %w", err)
	}

	if err := pdf.OutputFileAndClose(pdfFile); err != nil {
		log.WithError(err).Error("Failed to write PDF file")
		return fmt.Errorf("error writing PDF file: %w", err)
	}

	return nil
}

func writeSummaryPage(pdf *fpdf.Fpdf, f report.Filter, s report.Summary) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, fmt.Sprintf("Expenses Report - %s", f.PeriodLabel()), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 13)
	lines := []string{
		fmt.Sprintf("Total spend: %s", s.Total.StringFixed(2)),
		fmt.Sprintf("Daily average: %s", s.DailyAverage.StringFixed(2)),
		fmt.Sprintf("Max day: %s", s.MaxDay.StringFixed(2)),
		fmt.Sprintf("Records: %d", s.Count),
	}
	if !s.MaxDayDate.IsZero() {
		lines[2] = fmt.Sprintf("Max day: %s (%s)", s.MaxDay.StringFixed(2), s.MaxDayDate.Format("2006-01-02"))
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}
}

// writeChartPage adds a page with the rendered chart, or a "No data to
// display" note when the render function reports an empty input.
func writeChartPage(pdf *fpdf.Fpdf, title string, render func() ([]byte, error)) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	png, err := render()
	if err != nil {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 10, "No data to display", "", 1, "L", false, 0, "")
		if err != charts.ErrNoData {
			log.WithError(err).Warn("Chart rendering failed, PDF page left without chart")
		}
		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(title, opts, bytes.NewReader(png))
	// Height 0 preserves the image aspect ratio.
	pdf.ImageOptions(title, chartMarginLeft, chartTop, chartWidthMM, 0, false, opts, 0, "")
}
