// Package output provides output formatting.
// This package produces human and machine-readable outputs; the formula
// packages never depend on it.
package output

import (
	"io"
	"sort"

	"corrosion-rate/core/types"
	"corrosion-rate/core/units"
	"corrosion-rate/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Options tune how results are presented
type Options struct {
	// Unit is the unit uniform rates are shown in
	Unit units.Unit

	// ShowSeverity adds the severity band column
	ShowSeverity bool
}

// DefaultOptions shows rates in mm/y with severity
func DefaultOptions() Options {
	return Options{Unit: units.MMPerYear, ShowSeverity: true}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the results of a batch
	Render(w io.Writer, report *types.Report) error

	// RenderSweep writes a rate series
	RenderSweep(w io.Writer, sweep *types.Sweep) error
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(NewCLIFormatter(opts))
	r.Register(NewJSONFormatter())
	r.Register(NewMarkdownFormatter(opts))
	return r
}

// Register adds a formatter, replacing any for the same format
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(format string) (Formatter, error) {
	f, ok := r.formatters[Format(format)]
	if !ok {
		return nil, errors.Newf(errors.TypeNotSupported, "unknown output format %q", format)
	}
	return f, nil
}

// Formats lists the registered format names, sorted
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
