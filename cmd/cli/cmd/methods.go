package cmd

import (
	"github.com/spf13/cobra"

	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
)

type methodCommand struct {
	method types.Method
	short  string
	long   string
}

var methodCommands = []methodCommand{
	{
		method: types.MethodWeightLoss,
		short:  "Uniform corrosion rate from coupon weight loss",
		long: `Compute the uniform corrosion rate from mass lost over an exposure period:

  CR(mpy) = 534 * W / (density * A * t)

The result is reported in both mm/y and mpy.`,
	},
	{
		method: types.MethodLPR,
		short:  "Uniform corrosion rate from linear polarization resistance",
		long: `Compute the corrosion rate from polarization resistance:

  icorr(uA/cm^2) = B / Rp
  CR(mm/y)       = 0.00327 * icorr * EW / density`,
	},
	{
		method: types.MethodPitting,
		short:  "Pitting rate extrapolated from the deepest pit",
		long: `Extrapolate the deepest pit to a yearly rate:

  PR(mm/y) = depth * 8760 / t`,
	},
	{
		method: types.MethodSuggest,
		short:  "Suggest a material for a chloride/pH/temperature environment",
		long: `Screen candidate materials with a small rule table. The first matching
rule wins; temperatures of 80 C or more add a note.

Suggestions are advisory and not a certified materials selection.`,
	},
}

func newMethodCmd(opts *rootOptions, m methodCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(m.method),
		Short: m.short,
		Long:  m.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := sampleFromFlags(cmd.Flags(), string(m.method), m.method)
			if err != nil {
				return err
			}
			if err := sample.Validate(); err != nil {
				return err
			}

			result, err := opts.engine().Evaluate(cmd.Context(), sample)
			if err != nil {
				return err
			}

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			return formatter.Render(cmd.OutOrStdout(), &types.Report{Results: []*types.Result{result}})
		},
	}

	addParamFlags(cmd.Flags(), types.RequiredParams(m.method)...)
	if m.method != types.MethodSuggest {
		addParamFlags(cmd.Flags(), rates.ParamAllowance)
	}
	return cmd
}
