package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"corrosion-rate/core/types"
	"corrosion-rate/core/units"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleReport() *types.Report {
	return &types.Report{
		RunID:  "run-1",
		Source: "samples.hcl",
		Results: []*types.Result{
			{SampleID: "WL-1", Method: types.MethodWeightLoss, CRMMPerYear: dec("0.863923"), CRMpy: dec("34.012739"), Severity: "severe"},
			{SampleID: "P-1", Method: types.MethodPitting, PRMMPerYear: dec("8.76"), Severity: "severe"},
			{SampleID: "ENV-1", Method: types.MethodSuggest, Suggestion: "316L stainless or 2205 duplex; consider corrosion inhibitor", Notes: "Moderate chlorides and acidic conditions increase pitting/SCC risk."},
			{SampleID: "BAD", Method: types.MethodLPR, Error: "[INVALID_INPUT] Rp_ohm_cm2 must be positive, got 0", ErrorParameter: "Rp_ohm_cm2"},
		},
		Failed: 1,
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCLIFormatter(DefaultOptions()).Render(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"CORROSION RATE SUMMARY",
		"0.863923 mm/y",
		"8.76 mm/y (pit)",
		"316L stainless or 2205 duplex",
		"Rp_ohm_cm2 must be positive",
		"4 samples, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIFormatterMils(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Unit: units.MilsPerYear}
	if err := NewCLIFormatter(opts).Render(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "34.012739 mpy") {
		t.Errorf("expected mpy rate:\n%s", out)
	}
	if !strings.Contains(out, "344.88 mpy (pit)") {
		t.Errorf("expected converted pitting rate:\n%s", out)
	}
	if strings.Contains(out, "severity") {
		t.Error("severity shown although disabled")
	}
}

func TestJSONFormatterSingleResult(t *testing.T) {
	report := &types.Report{Results: sampleReport().Results[:1]}
	var buf bytes.Buffer
	if err := NewJSONFormatter().Render(&buf, report); err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["CR_mm_per_y"] != "0.863923" || got["CR_mpy"] != "34.012739" {
		t.Errorf("unexpected rate fields: %v", got)
	}
	if _, ok := got["results"]; ok {
		t.Error("single result should not be wrapped in a report")
	}
}

func TestJSONFormatterBatch(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Render(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var got types.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got.Results) != 4 || got.Failed != 1 {
		t.Errorf("unexpected report %+v", got)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(DefaultOptions()).Render(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"| WL-1 | weight-loss | 0.863923 mm/y | severe |",
		"## Material suggestions",
		"advisory",
		"- **BAD**:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSweep(t *testing.T) {
	sweep := &types.Sweep{
		Method:    types.MethodWeightLoss,
		Parameter: "A_cm2",
		Points: []types.SweepPoint{
			{Value: 5, CRMMPerYear: dec("1.727846")},
			{Value: 0, Error: "bad"},
		},
	}
	reg := NewRegistry(DefaultOptions())
	for _, name := range reg.Formats() {
		f, err := reg.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := f.RenderSweep(&buf, sweep); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(buf.String(), "1.727846") {
			t.Errorf("%s sweep missing rate:\n%s", name, buf.String())
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(DefaultOptions())
	if got := strings.Join(reg.Formats(), ","); got != "cli,json,markdown" {
		t.Errorf("formats = %s", got)
	}
	if _, err := reg.Get("html"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	if len(lines) != 3 || lines[0] != "one two" {
		t.Errorf("unexpected wrap %q", lines)
	}
}

func TestRateText(t *testing.T) {
	tests := []struct {
		name   string
		result *types.Result
		unit   units.Unit
		want   string
	}{
		{"uniform mm/y", &types.Result{CRMMPerYear: dec("0.863923"), CRMpy: dec("34.012739")}, units.MMPerYear, "0.863923 mm/y"},
		{"uniform mpy", &types.Result{CRMMPerYear: dec("0.863923"), CRMpy: dec("34.012739")}, units.MilsPerYear, "34.012739 mpy"},
		{"pitting mm/y", &types.Result{PRMMPerYear: dec("8.76")}, units.MMPerYear, "8.76 mm/y (pit)"},
		{"pitting mpy", &types.Result{PRMMPerYear: dec("8.76")}, units.MilsPerYear, "344.88 mpy (pit)"},
		{"pitting whole mpy", &types.Result{PRMMPerYear: dec("2")}, units.MilsPerYear, "79 mpy (pit)"},
		{"no rate", &types.Result{Suggestion: "Carbon steel"}, units.MilsPerYear, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RateText(tt.result, tt.unit); got != tt.want {
				t.Errorf("RateText = %q, want %q", got, tt.want)
			}
		})
	}
}
