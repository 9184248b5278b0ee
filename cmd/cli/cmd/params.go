package cmd

import (
	"github.com/spf13/pflag"

	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
)

var paramHelp = map[string]string{
	rates.ParamWeightLoss:       "weight loss in mg",
	rates.ParamDensity:          "density in g/cm^3",
	rates.ParamArea:             "exposed area in cm^2",
	rates.ParamTime:             "exposure time in hours",
	rates.ParamSternGeary:       "Stern-Geary constant in mV (e.g. 26 active, 52 passive)",
	rates.ParamPolarization:     "polarization resistance in ohm*cm^2",
	rates.ParamEquivalentWeight: "equivalent weight in g/equiv",
	rates.ParamPitDepth:         "deepest pit depth in mm",
	rates.ParamAllowance:        "corrosion allowance in mm, reports remaining life",
	types.ParamChloride:         "chloride concentration in ppm",
	types.ParamPH:               "solution pH",
	types.ParamTemperature:      "temperature in Celsius",
}

// addParamFlags registers one float flag per parameter, named after it
func addParamFlags(fs *pflag.FlagSet, params ...string) {
	for _, p := range params {
		if fs.Lookup(p) != nil {
			continue
		}
		fs.Float64(p, 0, paramHelp[p])
	}
}

// sampleFromFlags builds a sample from the parameter flags the user set.
// Flags left at their default stay unset on the sample.
func sampleFromFlags(fs *pflag.FlagSet, id string, method types.Method) (*types.Sample, error) {
	s := &types.Sample{ID: id, Method: method}
	for _, p := range types.ParamNames() {
		f := fs.Lookup(p)
		if f == nil || !f.Changed {
			continue
		}
		v, err := fs.GetFloat64(p)
		if err != nil {
			return nil, err
		}
		if err := s.Set(p, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}
