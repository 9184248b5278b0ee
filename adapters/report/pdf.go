// Package report renders evaluation reports as PDF documents.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"corrosion-rate/core/output"
	"corrosion-rate/core/types"
	"corrosion-rate/core/units"
	"corrosion-rate/internal/errors"
)

// Disclaimer is printed under the material suggestions
const Disclaimer = "Material suggestions are advisory screening output based on simple " +
	"chloride, pH and temperature thresholds. They are not a certified materials selection."

// Options controls the document header and rate unit
type Options struct {
	Title  string
	Author string
	Unit   units.Unit
	// Now is used for the date line; zero means time.Now
	Now time.Time
}

// column widths in mm, A4 portrait with 10 mm margins
var rateColumns = []struct {
	title string
	width float64
}{
	{"Sample", 45},
	{"Method", 28},
	{"Rate", 50},
	{"Severity", 25},
	{"Life (y)", 42},
}

// WritePDF renders report to w
func WritePDF(w io.Writer, report *types.Report, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Corrosion Rate Report"
	}
	if opts.Unit == "" {
		opts.Unit = units.MMPerYear
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", opts.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	if report.RunID != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Run: %s", report.RunID))
		pdf.Ln(6)
	}
	if report.Source != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Source: %s", report.Source)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	var rates, suggestions, failures []*types.Result
	for _, r := range report.Results {
		switch {
		case r.Failed():
			failures = append(failures, r)
		case r.Method == types.MethodSuggest:
			suggestions = append(suggestions, r)
		default:
			rates = append(rates, r)
		}
	}

	if len(rates) > 0 {
		section(pdf, "Corrosion rates")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range rateColumns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range rates {
			life := "-"
			if r.RemainingLifeYears != nil {
				life = r.RemainingLifeYears.String()
			}
			cells := []string{r.SampleID, string(r.Method), output.RateText(r, opts.Unit), r.Severity, life}
			for i, c := range rateColumns {
				pdf.CellFormat(c.width, 6, tr(cells[i]), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if len(suggestions) > 0 {
		section(pdf, "Material suggestions")
		for _, r := range suggestions {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s: %s", r.SampleID, r.Suggestion)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(r.Notes), "", "L", false)
			pdf.Ln(2)
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(Disclaimer), "", "L", false)
		pdf.Ln(6)
	}

	if len(failures) > 0 {
		section(pdf, "Rejected samples")
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range failures {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s: %s", r.SampleID, r.Error)), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return errors.Internal("report generation error", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}
