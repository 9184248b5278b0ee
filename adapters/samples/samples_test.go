package samples

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// checkBatch asserts the three samples every fixture below describes
func checkBatch(t *testing.T, got []*types.Sample) {
	t.Helper()
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}

	wl := got[0]
	if wl.ID != "WL-1" || wl.Method != types.MethodWeightLoss {
		t.Errorf("unexpected first sample %+v", wl)
	}
	if v, ok := wl.Get(rates.ParamArea); !ok || v != 10 {
		t.Errorf("A_cm2 = %v (set=%v)", v, ok)
	}
	if _, ok := wl.Get(rates.ParamPitDepth); ok {
		t.Error("depth should be unset for weight-loss sample")
	}

	pit := got[1]
	if pit.Method != types.MethodPitting || pit.Value(rates.ParamPitDepth) != 0.5 || pit.Value(rates.ParamTime) != 500 {
		t.Errorf("unexpected pitting sample %+v", pit)
	}

	env := got[2]
	if env.Method != types.MethodSuggest || env.Value(types.ParamPH) != 5 {
		t.Errorf("unexpected suggest sample %+v", env)
	}
	if v, ok := env.Get(types.ParamChloride); !ok || v != 5000 {
		t.Errorf("chloride = %v (set=%v)", v, ok)
	}
}

func TestHCLLoader(t *testing.T) {
	path := writeFile(t, "samples.hcl", `
sample "WL-1" {
  method        = "weight-loss"
  label         = "coupon A"
  W_mg          = 500
  density_g_cm3 = 7.85
  A_cm2         = 10
  t_h           = 100
}

sample "P-1" {
  method   = "pitting"
  depth_mm = 0.5
  t_h      = 500
}

sample "ENV-1" {
  method       = "suggest"
  chloride_ppm = 5000
  pH           = 5
  temp_C       = 70
}
`)
	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	checkBatch(t, got)
	if got[0].Label != "coupon A" {
		t.Errorf("label = %q", got[0].Label)
	}
}

func TestHCLLoaderRejectsUnknownAttribute(t *testing.T) {
	path := writeFile(t, "bad.hcl", `
sample "X" {
  method = "pitting"
  dept_mm = 0.5
}
`)
	_, err := Load(context.Background(), path)
	if !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected PARSING_ERROR, got %v", err)
	}
}

func TestHCLLoaderSyntaxError(t *testing.T) {
	path := writeFile(t, "broken.hcl", `sample "X" {`)
	if _, err := Load(context.Background(), path); !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected PARSING_ERROR, got %v", err)
	}
}

func TestYAMLLoader(t *testing.T) {
	path := writeFile(t, "samples.yaml", `
samples:
  - id: WL-1
    method: weight-loss
    W_mg: 500
    density_g_cm3: 7.85
    A_cm2: 10
    t_h: 100
  - id: P-1
    method: pitting
    depth_mm: 0.5
    t_h: 500
  - id: ENV-1
    method: suggest
    chloride_ppm: 5000
    pH: 5
    temp_C: 70
`)
	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	checkBatch(t, got)
}

func TestYAMLLoaderRejectsUnknownKey(t *testing.T) {
	path := writeFile(t, "samples.yml", `
samples:
  - id: X
    method: pitting
    depth: 0.5
`)
	if _, err := Load(context.Background(), path); !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected PARSING_ERROR, got %v", err)
	}
}

func TestLoaderRejectsEmptyEntry(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
	}{
		{name: "yaml", file: "samples.yaml", src: "samples:\n  -\n"},
		{name: "yaml after valid entry", file: "samples.yml", src: "samples:\n  - id: P-1\n    method: pitting\n    depth_mm: 0.5\n    t_h: 500\n  -\n"},
		{name: "json", file: "samples.json", src: `{"samples":[null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.src)
			got, err := Load(context.Background(), path)
			if !errors.IsType(err, errors.TypeParsing) {
				t.Fatalf("expected PARSING_ERROR, got %v", err)
			}
			if !strings.Contains(err.Error(), "empty sample entry") {
				t.Errorf("unexpected error %q", err)
			}
			if got != nil {
				t.Errorf("expected no samples, got %d", len(got))
			}
		})
	}
}

func TestJSONLoader(t *testing.T) {
	path := writeFile(t, "samples.json", `{"samples": [
  {"id": "WL-1", "method": "weight-loss", "W_mg": 500, "density_g_cm3": 7.85, "A_cm2": 10, "t_h": 100},
  {"id": "P-1", "method": "pitting", "depth_mm": 0.5, "t_h": 500},
  {"id": "ENV-1", "method": "suggest", "chloride_ppm": 5000, "pH": 5, "temp_C": 70}
]}`)
	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	checkBatch(t, got)
}

func TestXLSXLoader(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"id", "method", "W_mg", "density_g_cm3", "A_cm2", "t_h", "depth_mm", "chloride_ppm", "pH", "temp_C"},
		{"WL-1", "weight-loss", 500, 7.85, 10, 100, nil, nil, nil, nil},
		{},
		{"P-1", "pitting", nil, nil, nil, 500, 0.5, nil, nil, nil},
		{"ENV-1", "Suggest", nil, nil, nil, nil, nil, 5000, 5, 70},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "samples.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	checkBatch(t, got)
}

func TestXLSXLoaderRejectsUnknownColumn(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"id", "method", "weight"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), path); !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected PARSING_ERROR, got %v", err)
	}
}

func TestUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "samples.csv", "id,method\n")
	if _, err := Load(context.Background(), path); !errors.IsType(err, errors.TypeNotSupported) {
		t.Fatalf("expected NOT_SUPPORTED, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewHCLLoader()); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(NewHCLLoader()); err == nil {
		t.Error("expected duplicate registration error")
	}
}
