package output

import (
	"fmt"
	"io"
	"strings"

	"corrosion-rate/core/types"
)

// MarkdownFormatter writes GitHub-flavored markdown tables
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes a rates table followed by a suggestions table
func (f *MarkdownFormatter) Render(w io.Writer, report *types.Report) error {
	var sb strings.Builder
	sb.WriteString("## Corrosion rates\n\n")
	if report.RunID != "" {
		fmt.Fprintf(&sb, "Run `%s`\n\n", report.RunID)
	}

	sb.WriteString("| Sample | Method | Rate | Severity | Remaining life (y) |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	var suggestions, failures []*types.Result
	for _, r := range report.Results {
		switch {
		case r.Failed():
			failures = append(failures, r)
		case r.Method == types.MethodSuggest:
			suggestions = append(suggestions, r)
		default:
			life := ""
			if r.RemainingLifeYears != nil {
				life = r.RemainingLifeYears.String()
			}
			severity := ""
			if f.opts.ShowSeverity {
				severity = r.Severity
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
				escape(r.SampleID), r.Method, RateText(r, f.opts.Unit), severity, life)
		}
	}

	if len(suggestions) > 0 {
		sb.WriteString("\n## Material suggestions\n\n")
		sb.WriteString("| Sample | Suggestion | Notes |\n|---|---|---|\n")
		for _, r := range suggestions {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escape(r.SampleID), escape(r.Suggestion), escape(r.Notes))
		}
		sb.WriteString("\n_Suggestions are advisory screening output, not a certified materials selection._\n")
	}

	if len(failures) > 0 {
		sb.WriteString("\n## Rejected samples\n\n")
		for _, r := range failures {
			fmt.Fprintf(&sb, "- **%s**: %s\n", escape(r.SampleID), escape(r.Error))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderSweep writes the series as a two-column table
func (f *MarkdownFormatter) RenderSweep(w io.Writer, sweep *types.Sweep) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "| %s | Rate |\n|---|---|\n", sweep.Parameter)
	for _, p := range sweep.Points {
		cell := "invalid"
		if p.Error == "" {
			cell = RateText(&types.Result{CRMMPerYear: p.CRMMPerYear, CRMpy: p.CRMpy, PRMMPerYear: p.PRMMPerYear}, f.opts.Unit)
		}
		fmt.Fprintf(&sb, "| %g | %s |\n", p.Value, cell)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
