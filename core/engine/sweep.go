package engine

import (
	"context"

	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

// sweepable lists the parameters a sweep may vary, per method
var sweepable = map[types.Method][]string{
	types.MethodWeightLoss: {rates.ParamWeightLoss, rates.ParamDensity, rates.ParamArea, rates.ParamTime},
	types.MethodLPR:        {rates.ParamSternGeary, rates.ParamPolarization, rates.ParamEquivalentWeight, rates.ParamDensity},
	types.MethodPitting:    {rates.ParamPitDepth, rates.ParamTime},
}

// Sweep evaluates base once per value with param replaced, producing the
// rate series (e.g. rate vs exposed area) that callers chart or tabulate.
// Points that fail validation carry their error and the sweep continues.
func (e *Engine) Sweep(ctx context.Context, base *types.Sample, param string, values []float64) (*types.Sweep, error) {
	allowed := false
	for _, p := range sweepable[base.Method] {
		if p == param {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errors.Newf(errors.TypeNotSupported, "cannot sweep %q for method %s", param, base.Method)
	}

	sweep := &types.Sweep{
		Method:    base.Method,
		Parameter: param,
		Points:    make([]types.SweepPoint, 0, len(values)),
	}

	for _, v := range values {
		s := *base
		if err := s.Set(param, v); err != nil {
			return nil, err
		}

		result, err := e.Evaluate(ctx, &s)
		point := types.SweepPoint{Value: v}
		if err != nil {
			if ctx.Err() != nil {
				return sweep, ctx.Err()
			}
			point.Error = err.Error()
		} else {
			point.CRMMPerYear = result.CRMMPerYear
			point.CRMpy = result.CRMpy
			point.PRMMPerYear = result.PRMMPerYear
		}
		sweep.Points = append(sweep.Points, point)
	}
	return sweep, nil
}
