// Package rates - Corrosion penetration rate formulas.
// Every function is pure: inputs in, rate out, no shared state.
// Parameters that must be strictly positive fail with an INVALID_INPUT
// error naming the parameter; nothing is clamped.
package rates

import (
	"corrosion-rate/core/units"
	"corrosion-rate/internal/errors"
)

const (
	// WeightLossConstant is K in CR(mpy) = K*W / (D*A*t), W in mg, D in g/cm³, t in h.
	// 534 is the ASTM G1 / NACE value for mils per year.
	WeightLossConstant = 534.0

	// LPRConstant is K2 in CR(mm/y) = K2 * icorr * EW / D, icorr in µA/cm².
	LPRConstant = 0.00327

	// HoursPerYear annualizes exposure times given in hours
	HoursPerYear = 8760.0
)

// Parameter names reported by INVALID_INPUT errors. They match the CLI flags.
const (
	ParamWeightLoss       = "W_mg"
	ParamDensity          = "density_g_cm3"
	ParamArea             = "A_cm2"
	ParamTime             = "t_h"
	ParamSternGeary       = "B_mV"
	ParamPolarization     = "Rp_ohm_cm2"
	ParamEquivalentWeight = "EW_g_per_equiv"
	ParamPitDepth         = "depth_mm"
	ParamRate             = "rate_mm_per_y"
	ParamAllowance        = "allowance_mm"
)

func requirePositive(name string, value float64) error {
	// !(v > 0) also rejects NaN
	if !(value > 0) {
		return errors.InvalidInput(name, value)
	}
	return nil
}

// WeightLossMilsPerYear returns the uniform corrosion rate in mpy from a
// coupon's mass loss (mg), density (g/cm³), exposed area (cm²) and exposure (h).
func WeightLossMilsPerYear(wMg, densityGCm3, areaCm2, hours float64) (float64, error) {
	if err := requirePositive(ParamDensity, densityGCm3); err != nil {
		return 0, err
	}
	if err := requirePositive(ParamArea, areaCm2); err != nil {
		return 0, err
	}
	if err := requirePositive(ParamTime, hours); err != nil {
		return 0, err
	}
	return (WeightLossConstant * wMg) / (densityGCm3 * areaCm2 * hours), nil
}

// WeightLossMMPerYear is WeightLossMilsPerYear expressed in mm/y
func WeightLossMMPerYear(wMg, densityGCm3, areaCm2, hours float64) (float64, error) {
	mpy, err := WeightLossMilsPerYear(wMg, densityGCm3, areaCm2, hours)
	if err != nil {
		return 0, err
	}
	return units.MilsPerYearToMMPerYear(mpy), nil
}

// CorrosionCurrentDensity returns icorr (µA/cm²) = B (mV) / Rp (Ω·cm²)
func CorrosionCurrentDensity(bMV, rpOhmCm2 float64) (float64, error) {
	if err := requirePositive(ParamPolarization, rpOhmCm2); err != nil {
		return 0, err
	}
	return bMV / rpOhmCm2, nil
}

// LPRMMPerYear converts a linear polarization resistance measurement into a
// penetration rate in mm/y.
func LPRMMPerYear(bMV, rpOhmCm2, ewGPerEquiv, densityGCm3 float64) (float64, error) {
	if err := requirePositive(ParamDensity, densityGCm3); err != nil {
		return 0, err
	}
	if err := requirePositive(ParamEquivalentWeight, ewGPerEquiv); err != nil {
		return 0, err
	}
	icorr, err := CorrosionCurrentDensity(bMV, rpOhmCm2)
	if err != nil {
		return 0, err
	}
	return LPRConstant * (icorr * ewGPerEquiv) / densityGCm3, nil
}

// PittingMMPerYear linearly extrapolates the deepest observed pit (mm) over
// the exposure (h) to a yearly rate. It describes one worst-case pit, not an
// averaged rate, and is not comparable to weight-loss or LPR results.
func PittingMMPerYear(depthMM, hours float64) (float64, error) {
	if err := requirePositive(ParamTime, hours); err != nil {
		return 0, err
	}
	return depthMM * (HoursPerYear / hours), nil
}

// ValidateAllowance rejects a corrosion allowance that is not positive
func ValidateAllowance(allowanceMM float64) error {
	return requirePositive(ParamAllowance, allowanceMM)
}

// RemainingLife returns the years until a corrosion allowance (mm) is
// consumed at a constant rate (mm/y).
func RemainingLife(allowanceMM, rateMMPerYear float64) (float64, error) {
	if err := ValidateAllowance(allowanceMM); err != nil {
		return 0, err
	}
	if err := requirePositive(ParamRate, rateMMPerYear); err != nil {
		return 0, err
	}
	return allowanceMM / rateMMPerYear, nil
}
