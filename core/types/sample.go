// Package types - Measurement sample and result types
package types

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"corrosion-rate/core/materials"
	"corrosion-rate/core/rates"
	"corrosion-rate/internal/errors"
)

// Method selects the calculation applied to a sample
type Method string

const (
	MethodWeightLoss Method = "weight-loss"
	MethodLPR        Method = "lpr"
	MethodPitting    Method = "pitting"
	MethodSuggest    Method = "suggest"
)

// Methods lists every supported method
var Methods = []Method{MethodWeightLoss, MethodLPR, MethodPitting, MethodSuggest}

// ParseMethod accepts the method names, case-insensitively
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Newf(errors.TypeNotSupported, "unknown method %q", s)
}

// String returns the string representation
func (m Method) String() string {
	return string(m)
}

// Parameter names for the suggestion inputs; rate parameters live in core/rates.
const (
	ParamChloride    = "chloride_ppm"
	ParamPH          = "pH"
	ParamTemperature = "temp_C"
)

// requiredParams lists, per method, the parameters that must be supplied
var requiredParams = map[Method][]string{
	MethodWeightLoss: {rates.ParamWeightLoss, rates.ParamDensity, rates.ParamArea, rates.ParamTime},
	MethodLPR:        {rates.ParamSternGeary, rates.ParamPolarization, rates.ParamEquivalentWeight, rates.ParamDensity},
	MethodPitting:    {rates.ParamPitDepth, rates.ParamTime},
	MethodSuggest:    {ParamChloride, ParamPH, ParamTemperature},
}

// RequiredParams returns the parameters a method needs
func RequiredParams(m Method) []string {
	return requiredParams[m]
}

// Sample is one measurement record. Numeric fields are optional so that a
// missing value can be told apart from an explicit zero.
type Sample struct {
	// ID uniquely identifies the sample within a batch
	ID string `json:"id" yaml:"id" validate:"required,max=64"`

	// Label is a free-text description (coupon, location, instrument)
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Method selects the calculation
	Method Method `json:"method" yaml:"method" validate:"required,oneof=weight-loss lpr pitting suggest"`

	WeightLossMg *float64 `json:"W_mg,omitempty" yaml:"W_mg,omitempty"`
	DensityGCm3  *float64 `json:"density_g_cm3,omitempty" yaml:"density_g_cm3,omitempty"`
	AreaCm2      *float64 `json:"A_cm2,omitempty" yaml:"A_cm2,omitempty"`
	TimeH        *float64 `json:"t_h,omitempty" yaml:"t_h,omitempty"`
	BMV          *float64 `json:"B_mV,omitempty" yaml:"B_mV,omitempty"`
	RpOhmCm2     *float64 `json:"Rp_ohm_cm2,omitempty" yaml:"Rp_ohm_cm2,omitempty"`
	EWGPerEquiv  *float64 `json:"EW_g_per_equiv,omitempty" yaml:"EW_g_per_equiv,omitempty"`
	DepthMM      *float64 `json:"depth_mm,omitempty" yaml:"depth_mm,omitempty"`
	ChloridePPM  *float64 `json:"chloride_ppm,omitempty" yaml:"chloride_ppm,omitempty"`
	PH           *float64 `json:"pH,omitempty" yaml:"pH,omitempty"`
	TempC        *float64 `json:"temp_C,omitempty" yaml:"temp_C,omitempty"`

	// AllowanceMM is an optional corrosion allowance used to report remaining life
	AllowanceMM *float64 `json:"allowance_mm,omitempty" yaml:"allowance_mm,omitempty"`
}

func (s *Sample) fields() map[string]**float64 {
	return map[string]**float64{
		rates.ParamWeightLoss:       &s.WeightLossMg,
		rates.ParamDensity:          &s.DensityGCm3,
		rates.ParamArea:             &s.AreaCm2,
		rates.ParamTime:             &s.TimeH,
		rates.ParamSternGeary:       &s.BMV,
		rates.ParamPolarization:     &s.RpOhmCm2,
		rates.ParamEquivalentWeight: &s.EWGPerEquiv,
		rates.ParamPitDepth:         &s.DepthMM,
		ParamChloride:               &s.ChloridePPM,
		ParamPH:                     &s.PH,
		ParamTemperature:            &s.TempC,
		rates.ParamAllowance:        &s.AllowanceMM,
	}
}

// ParamNames returns every numeric parameter name a sample accepts, sorted
func ParamNames() []string {
	var s Sample
	names := make([]string, 0, len(s.fields()))
	for name := range s.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set assigns a numeric parameter by name
func (s *Sample) Set(param string, value float64) error {
	field, ok := s.fields()[param]
	if !ok {
		return errors.Newf(errors.TypeNotSupported, "unknown parameter %q", param)
	}
	v := value
	*field = &v
	return nil
}

// Get returns a numeric parameter by name and whether it was supplied
func (s *Sample) Get(param string) (float64, bool) {
	field, ok := s.fields()[param]
	if !ok || *field == nil {
		return 0, false
	}
	return **field, true
}

// Value returns a supplied parameter or zero
func (s *Sample) Value(param string) float64 {
	v, _ := s.Get(param)
	return v
}

// Conditions returns the environment used by the suggestion engine
func (s *Sample) Conditions() materials.Conditions {
	return materials.Conditions{
		ChloridePPM: s.Value(ParamChloride),
		PH:          s.Value(ParamPH),
		TempC:       s.Value(ParamTemperature),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the record shape and that every parameter required by the
// method was supplied. It does not check values; the formulas do that.
func (s *Sample) Validate() error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return &errors.Error{
				Type:      errors.TypeMissingInput,
				Message:   "sample " + fe.Field() + " failed " + fe.Tag() + " validation",
				Parameter: strings.ToLower(fe.Field()),
				Cause:     err,
			}
		}
		return errors.Internal("sample validation failed", err)
	}
	return s.Require()
}

// Require returns a MISSING_INPUT error for the first required parameter that
// was not supplied.
func (s *Sample) Require() error {
	for _, param := range requiredParams[s.Method] {
		if _, ok := s.Get(param); !ok {
			return errors.MissingInput(param, string(s.Method))
		}
	}
	return nil
}

// Float returns a pointer to v, for building samples in code
func Float(v float64) *float64 {
	return &v
}
