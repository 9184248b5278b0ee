package samples

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

// HCLLoader reads sample blocks:
//
//	sample "WL-1" {
//	  method        = "weight-loss"
//	  W_mg          = 500
//	  density_g_cm3 = 7.85
//	  A_cm2         = 10
//	  t_h           = 100
//	}
type HCLLoader struct{}

type hclDocument struct {
	Samples []hclSample `hcl:"sample,block"`
}

type hclSample struct {
	ID           string   `hcl:"id,label"`
	Method       string   `hcl:"method"`
	Label        string   `hcl:"label,optional"`
	WeightLossMg *float64 `hcl:"W_mg,optional"`
	DensityGCm3  *float64 `hcl:"density_g_cm3,optional"`
	AreaCm2      *float64 `hcl:"A_cm2,optional"`
	TimeH        *float64 `hcl:"t_h,optional"`
	BMV          *float64 `hcl:"B_mV,optional"`
	RpOhmCm2     *float64 `hcl:"Rp_ohm_cm2,optional"`
	EWGPerEquiv  *float64 `hcl:"EW_g_per_equiv,optional"`
	DepthMM      *float64 `hcl:"depth_mm,optional"`
	ChloridePPM  *float64 `hcl:"chloride_ppm,optional"`
	PH           *float64 `hcl:"pH,optional"`
	TempC        *float64 `hcl:"temp_C,optional"`
	AllowanceMM  *float64 `hcl:"allowance_mm,optional"`
}

// NewHCLLoader creates a new HCL loader
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Name returns the loader name
func (l *HCLLoader) Name() string {
	return "hcl"
}

// CanLoad handles .hcl files
func (l *HCLLoader) CanLoad(path string) bool {
	return hasExt(path, ".hcl")
}

// Load parses path
func (l *HCLLoader) Load(ctx context.Context, path string) ([]*types.Sample, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read sample file", err).WithContext("path", path)
	}

	// hclparse caches by filename, so each load gets its own parser
	file, diags := hclparse.NewParser().ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	out := make([]*types.Sample, 0, len(doc.Samples))
	for _, s := range doc.Samples {
		out = append(out, &types.Sample{
			ID:           s.ID,
			Label:        s.Label,
			Method:       types.Method(s.Method),
			WeightLossMg: s.WeightLossMg,
			DensityGCm3:  s.DensityGCm3,
			AreaCm2:      s.AreaCm2,
			TimeH:        s.TimeH,
			BMV:          s.BMV,
			RpOhmCm2:     s.RpOhmCm2,
			EWGPerEquiv:  s.EWGPerEquiv,
			DepthMM:      s.DepthMM,
			ChloridePPM:  s.ChloridePPM,
			PH:           s.PH,
			TempC:        s.TempC,
			AllowanceMM:  s.AllowanceMM,
		})
	}
	return out, nil
}

func diagError(path string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Parsing(fmt.Sprintf("%s:%d: %s", path, line, diag.Summary), diags).
			WithContext("detail", diag.Detail)
	}
	return errors.Parsing(path, diags)
}
