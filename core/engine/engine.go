// Package engine evaluates measurement samples against the rate formulas and
// the material suggestion rules. The CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"corrosion-rate/core/materials"
	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
	"corrosion-rate/core/units"
	"corrosion-rate/internal/errors"
	"corrosion-rate/internal/logging"
)

// Version is reported in batch metadata
const Version = "0.1.0"

// Suggester produces a material suggestion for service conditions
type Suggester interface {
	Suggest(c materials.Conditions) materials.Suggestion
}

// Config configures the engine
type Config struct {
	// Precision is the number of decimal places results are rounded to
	Precision int32
}

// DefaultConfig rounds to six places, as the lab sheets do
func DefaultConfig() Config {
	return Config{Precision: 6}
}

// Engine is the primary API for evaluating samples
type Engine struct {
	suggester Suggester
	config    Config
	log       *zap.Logger
}

// New creates an engine. A nil suggester selects the default rules.
func New(suggester Suggester, cfg Config) *Engine {
	if suggester == nil {
		suggester = materials.NewDefaultEngine()
	}
	return &Engine{
		suggester: suggester,
		config:    cfg,
		log:       logging.With(zap.String("component", "engine")),
	}
}

// NewDefault creates an engine with the default rules and configuration
func NewDefault() *Engine {
	return New(nil, DefaultConfig())
}

func (e *Engine) round(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v).Round(e.config.Precision)
	return &d
}

// Evaluate applies the sample's method. The returned error is also recorded
// on the result so batch callers can keep going.
func (e *Engine) Evaluate(ctx context.Context, s *types.Sample) (*types.Result, error) {
	result := &types.Result{
		SampleID: s.ID,
		Label:    s.Label,
		Method:   s.Method,
	}

	err := e.evaluate(ctx, s, result)
	if err != nil {
		// a failed sample carries no partial rates
		*result = types.Result{SampleID: s.ID, Label: s.Label, Method: s.Method}
		result.Error = err.Error()
		result.ErrorParameter = errors.ParameterOf(err)
		e.log.Debug("sample rejected",
			zap.String("sample", s.ID),
			zap.String("method", s.Method.String()),
			zap.Error(err))
		return result, err
	}

	e.log.Debug("sample evaluated",
		zap.String("sample", s.ID),
		zap.String("method", s.Method.String()),
		zap.String("severity", result.Severity))
	return result, nil
}

func (e *Engine) evaluate(ctx context.Context, s *types.Sample, result *types.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	allowance, hasAllowance := s.Get(rates.ParamAllowance)
	if hasAllowance && s.Method != types.MethodSuggest {
		if err := rates.ValidateAllowance(allowance); err != nil {
			return err
		}
	}

	var uniform float64
	switch s.Method {
	case types.MethodWeightLoss:
		mpy, err := rates.WeightLossMilsPerYear(
			s.Value(rates.ParamWeightLoss),
			s.Value(rates.ParamDensity),
			s.Value(rates.ParamArea),
			s.Value(rates.ParamTime))
		if err != nil {
			return err
		}
		uniform = units.MilsPerYearToMMPerYear(mpy)
		result.CRMMPerYear = e.round(uniform)
		result.CRMpy = e.round(mpy)
		result.Severity = string(rates.UniformSeverity(uniform))

	case types.MethodLPR:
		icorr, err := rates.CorrosionCurrentDensity(s.Value(rates.ParamSternGeary), s.Value(rates.ParamPolarization))
		if err != nil {
			return err
		}
		rate, err := rates.LPRMMPerYear(
			s.Value(rates.ParamSternGeary),
			s.Value(rates.ParamPolarization),
			s.Value(rates.ParamEquivalentWeight),
			s.Value(rates.ParamDensity))
		if err != nil {
			return err
		}
		uniform = rate
		result.ICorrUACm2 = e.round(icorr)
		result.CRMMPerYear = e.round(rate)
		result.CRMpy = e.round(units.MMPerYearToMilsPerYear(rate))
		result.Severity = string(rates.UniformSeverity(rate))

	case types.MethodPitting:
		rate, err := rates.PittingMMPerYear(s.Value(rates.ParamPitDepth), s.Value(rates.ParamTime))
		if err != nil {
			return err
		}
		uniform = rate
		result.PRMMPerYear = e.round(rate)
		result.Severity = string(rates.PittingSeverity(rate))

	case types.MethodSuggest:
		out := e.suggester.Suggest(s.Conditions())
		result.Suggestion = out.Suggestion
		result.Notes = out.Notes
		result.MatchedRule = out.MatchedRule
		return nil

	default:
		return errors.NotSupported(fmt.Sprintf("method %q", s.Method))
	}

	if hasAllowance && uniform > 0 {
		years, err := rates.RemainingLife(allowance, uniform)
		if err != nil {
			return err
		}
		result.RemainingLifeYears = e.round(years)
	}
	return nil
}

// EvaluateAll evaluates samples one after another. Failures are recorded on
// their result and do not stop the batch; cancellation does.
func (e *Engine) EvaluateAll(ctx context.Context, samples []*types.Sample) (*types.Report, error) {
	start := time.Now()
	report := &types.Report{
		RunID:   uuid.NewString(),
		Results: make([]*types.Result, 0, len(samples)),
	}

	seen := make(map[string]bool, len(samples))
	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if s == nil {
			err := errors.Parsing("empty sample entry", nil).WithContext("index", i)
			report.Results = append(report.Results, &types.Result{Error: err.Error()})
			report.Failed++
			continue
		}
		if seen[s.ID] && s.ID != "" {
			report.Results = append(report.Results, &types.Result{
				SampleID: s.ID,
				Method:   s.Method,
				Error:    errors.Newf(errors.TypeParsing, "duplicate sample id %q", s.ID).Error(),
			})
			report.Failed++
			continue
		}
		seen[s.ID] = true

		result, err := e.Evaluate(ctx, s)
		if err != nil {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	report.Metadata = types.ReportMetadata{
		Timestamp: start.UTC(),
		Duration:  time.Since(start).String(),
		Version:   Version,
	}
	e.log.Info("batch evaluated",
		zap.String("run_id", report.RunID),
		zap.Int("samples", len(samples)),
		zap.Int("failed", report.Failed))
	return report, nil
}
