package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of evaluating one sample. Rate fields are set only
// for the method that produces them.
type Result struct {
	// SampleID is the evaluated sample
	SampleID string `json:"sample_id"`

	// Label is copied from the sample
	Label string `json:"label,omitempty"`

	// Method is the calculation that was applied
	Method Method `json:"method"`

	// CRMMPerYear is the uniform corrosion rate in mm/y (weight-loss, lpr)
	CRMMPerYear *decimal.Decimal `json:"CR_mm_per_y,omitempty"`

	// CRMpy is the uniform corrosion rate in mils per year (weight-loss, lpr)
	CRMpy *decimal.Decimal `json:"CR_mpy,omitempty"`

	// ICorrUACm2 is the corrosion current density (lpr)
	ICorrUACm2 *decimal.Decimal `json:"icorr_uA_cm2,omitempty"`

	// PRMMPerYear is the extrapolated pitting rate in mm/y (pitting)
	PRMMPerYear *decimal.Decimal `json:"PR_mm_per_y,omitempty"`

	// RemainingLifeYears is set when the sample carried a corrosion allowance
	RemainingLifeYears *decimal.Decimal `json:"remaining_life_years,omitempty"`

	// Severity is the qualitative band of the rate
	Severity string `json:"severity,omitempty"`

	// Suggestion, Notes and MatchedRule are set for the suggest method
	Suggestion  string `json:"suggestion,omitempty"`
	Notes       string `json:"notes,omitempty"`
	MatchedRule string `json:"matched_rule,omitempty"`

	// Error is set when the sample could not be evaluated
	Error string `json:"error,omitempty"`

	// ErrorParameter names the parameter that failed validation
	ErrorParameter string `json:"error_parameter,omitempty"`
}

// Failed reports whether evaluation failed
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Report is the outcome of evaluating a batch of samples
type Report struct {
	// RunID uniquely identifies the evaluation run
	RunID string `json:"run_id"`

	// Source is the file the samples came from, if any
	Source string `json:"source,omitempty"`

	// Results are in sample order
	Results []*Result `json:"results"`

	// Failed counts results with an error
	Failed int `json:"failed"`

	// Metadata contains execution context
	Metadata ReportMetadata `json:"metadata"`
}

// ReportMetadata contains execution context
type ReportMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  string    `json:"duration"`
	Version   string    `json:"version"`
}

// SweepPoint is one evaluation of a parameter sweep
type SweepPoint struct {
	Value       float64          `json:"value"`
	CRMMPerYear *decimal.Decimal `json:"CR_mm_per_y,omitempty"`
	CRMpy       *decimal.Decimal `json:"CR_mpy,omitempty"`
	PRMMPerYear *decimal.Decimal `json:"PR_mm_per_y,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// Sweep is a rate series over one varied parameter
type Sweep struct {
	Method    Method       `json:"method"`
	Parameter string       `json:"parameter"`
	Points    []SweepPoint `json:"points"`
}
