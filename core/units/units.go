// Package units converts corrosion penetration rates between unit systems.
// Conversions are linear and accept any real value, including zero and negatives.
package units

import (
	"strings"

	"corrosion-rate/internal/errors"
)

// MilsPerMillimeter is the number of mils (thousandths of an inch) in one millimeter
const MilsPerMillimeter = 39.3701

// Unit identifies a penetration-rate unit
type Unit string

const (
	// MMPerYear is millimeters per year
	MMPerYear Unit = "mm/y"

	// MilsPerYear is mils per year (mpy)
	MilsPerYear Unit = "mpy"
)

// MMPerYearToMilsPerYear converts mm/y to mpy
func MMPerYearToMilsPerYear(mmPerYear float64) float64 {
	return mmPerYear * MilsPerMillimeter
}

// MilsPerYearToMMPerYear converts mpy to mm/y
func MilsPerYearToMMPerYear(milsPerYear float64) float64 {
	return milsPerYear / MilsPerMillimeter
}

// ParseUnit accepts the canonical names plus common spellings
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm/y", "mmpy", "mm_per_y", "mm/year":
		return MMPerYear, nil
	case "mpy", "mil/y", "mils/y", "mils/year":
		return MilsPerYear, nil
	}
	return "", errors.Newf(errors.TypeNotSupported, "unknown rate unit %q", s)
}

// Convert moves a rate from one unit to another
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == MMPerYear {
		return MMPerYearToMilsPerYear(value)
	}
	return MilsPerYearToMMPerYear(value)
}

// String returns the unit label
func (u Unit) String() string {
	return string(u)
}
