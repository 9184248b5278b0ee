package samples

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

// XLSXLoader reads the first sheet of a workbook. Row 1 holds column names:
// id, method, label and any sample parameter (W_mg, t_h, pH, ...). Empty
// cells leave the parameter unset; fully empty rows are skipped.
type XLSXLoader struct{}

// NewXLSXLoader creates a spreadsheet loader
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

// Name returns the loader name
func (l *XLSXLoader) Name() string {
	return "xlsx"
}

// CanLoad handles .xlsx files
func (l *XLSXLoader) CanLoad(path string) bool {
	return hasExt(path, ".xlsx")
}

// Load parses path
func (l *XLSXLoader) Load(ctx context.Context, path string) ([]*types.Sample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Parsing("failed to read sheet", err).WithContext("sheet", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.Parsing("empty sheet", nil).WithContext("sheet", sheet)
	}

	header := make([]string, len(rows[0]))
	known := make(map[string]bool)
	for _, p := range types.ParamNames() {
		known[p] = true
	}
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		switch strings.ToLower(name) {
		case "id", "method", "label":
			name = strings.ToLower(name)
		default:
			if !known[name] {
				return nil, errors.Parsing(fmt.Sprintf("unknown column %q", name), nil).
					WithContext("sheet", sheet)
			}
		}
		header[i] = name
	}

	var out []*types.Sample
	for r, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if blank(row) {
			continue
		}
		s, err := parseRow(header, row)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("%s row %d", sheet, r+2), err)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseRow(header, row []string) (*types.Sample, error) {
	s := &types.Sample{}
	for i, cell := range row {
		if i >= len(header) {
			break
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		switch header[i] {
		case "id":
			s.ID = cell
		case "method":
			s.Method = types.Method(strings.ToLower(cell))
		case "label":
			s.Label = cell
		default:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", header[i], err)
			}
			if err := s.Set(header[i], v); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
