package output

import (
	"encoding/json"
	"io"

	"corrosion-rate/core/types"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes a single result as a bare object and a batch as the full report
func (f *JSONFormatter) Render(w io.Writer, report *types.Report) error {
	if report.Source == "" && len(report.Results) == 1 {
		return encode(w, report.Results[0])
	}
	return encode(w, report)
}

// RenderSweep writes the sweep
func (f *JSONFormatter) RenderSweep(w io.Writer, sweep *types.Sweep) error {
	return encode(w, sweep)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
