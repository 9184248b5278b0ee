package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"corrosion-rate/core/types"
	"corrosion-rate/core/units"
)

const tableWidth = 73

// CLIFormatter writes a boxed table in the style of the other commands
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a table formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes one row per result; suggestions and errors wrap below their row
func (f *CLIFormatter) Render(w io.Writer, report *types.Report) error {
	b := &boxWriter{w: w}
	b.rule("┌", "┐")
	b.centered("CORROSION RATE SUMMARY")
	b.rule("├", "┤")

	for _, r := range report.Results {
		label := r.SampleID
		if r.Label != "" {
			label += " (" + r.Label + ")"
		}
		switch {
		case r.Failed():
			b.row(truncate(label, 44), "ERROR")
			b.wrapped("└─ ", r.Error)
		case r.Method == types.MethodSuggest:
			b.row(truncate(label, 44), "suggest")
			b.wrapped("├─ ", r.Suggestion)
			b.wrapped("└─ ", r.Notes)
		default:
			b.row(truncate(label+" ["+string(r.Method)+"]", 44), RateText(r, f.opts.Unit))
			if f.opts.ShowSeverity && r.Severity != "" {
				b.row("   └─ severity", r.Severity)
			}
			if r.ICorrUACm2 != nil {
				b.row("   └─ icorr", r.ICorrUACm2.String()+" µA/cm²")
			}
			if r.RemainingLifeYears != nil {
				b.row("   └─ remaining life", r.RemainingLifeYears.String()+" y")
			}
		}
	}

	b.rule("└", "┘")
	if len(report.Results) > 1 {
		fmt.Fprintf(w, "\n%d samples, %d failed\n", len(report.Results), report.Failed)
	}
	if report.Metadata.Duration != "" {
		fmt.Fprintf(w, "Evaluated in %s\n", report.Metadata.Duration)
	}
	return b.err
}

// RenderSweep writes the series as a two-column table
func (f *CLIFormatter) RenderSweep(w io.Writer, sweep *types.Sweep) error {
	b := &boxWriter{w: w}
	b.rule("┌", "┐")
	b.centered(strings.ToUpper(fmt.Sprintf("%s rate vs %s", sweep.Method, sweep.Parameter)))
	b.rule("├", "┤")
	for _, p := range sweep.Points {
		cell := ""
		if p.Error != "" {
			cell = "invalid"
		} else {
			cell = RateText(&types.Result{
				Method:      sweep.Method,
				CRMMPerYear: p.CRMMPerYear,
				CRMpy:       p.CRMpy,
				PRMMPerYear: p.PRMMPerYear,
			}, f.opts.Unit)
		}
		b.row(fmt.Sprintf("%s = %g", sweep.Parameter, p.Value), cell)
	}
	b.rule("└", "┘")
	return b.err
}

// RateText renders the headline rate of a result in the requested unit.
// Pitting rates are converted too but keep their "pit" marker.
func RateText(r *types.Result, unit units.Unit) string {
	switch {
	case r.PRMMPerYear != nil:
		if unit == units.MilsPerYear {
			return convertRate(*r.PRMMPerYear, unit).String() + " " + unit.String() + " (pit)"
		}
		return r.PRMMPerYear.String() + " mm/y (pit)"
	case unit == units.MilsPerYear && r.CRMpy != nil:
		return r.CRMpy.String() + " mpy"
	case r.CRMMPerYear != nil:
		return r.CRMMPerYear.String() + " mm/y"
	}
	return "-"
}

// convertRate converts a mm/y value, keeping its number of decimal places
func convertRate(mm decimal.Decimal, unit units.Unit) decimal.Decimal {
	places := -mm.Exponent()
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(units.Convert(mm.InexactFloat64(), units.MMPerYear, unit)).Round(places)
}

type boxWriter struct {
	w   io.Writer
	err error
}

func (b *boxWriter) printf(format string, args ...interface{}) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func (b *boxWriter) rule(left, right string) {
	b.printf("%s%s%s\n", left, strings.Repeat("─", tableWidth), right)
}

func (b *boxWriter) centered(title string) {
	pad := tableWidth - len(title)
	if pad < 0 {
		pad = 0
	}
	b.printf("│%s%s%s│\n", strings.Repeat(" ", pad/2), title, strings.Repeat(" ", pad-pad/2))
}

func (b *boxWriter) row(left, right string) {
	b.printf("│ %-46s %24s │\n", left, right)
}

func (b *boxWriter) wrapped(prefix, text string) {
	width := tableWidth - 2 - 3 - len([]rune(prefix))
	for _, line := range wrap(text, width) {
		b.printf("│   %s%-*s │\n", prefix, width, line)
		prefix = strings.Repeat(" ", len([]rune(prefix)))
	}
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
