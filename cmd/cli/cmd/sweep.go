package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corrosion-rate/core/rates"
	"corrosion-rate/core/types"
	"corrosion-rate/internal/logging"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		method string
		param  string
		values []float64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate a rate while varying one parameter",
		Long: `Evaluate one method repeatedly, replacing a single parameter with each of
the given values. The default is the weight-loss rate against exposed area.

Examples:
  corrosion-rate sweep --W_mg 500 --density_g_cm3 7.85 --t_h 100
  corrosion-rate sweep --method pitting --param t_h --values 100,500,1000 --depth_mm 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := types.ParseMethod(method)
			if err != nil {
				return err
			}
			base, err := sampleFromFlags(cmd.Flags(), "sweep", m)
			if err != nil {
				return err
			}

			sweep, err := opts.engine().Sweep(cmd.Context(), base, param, values)
			if err != nil {
				return err
			}
			logging.Debug("sweep evaluated",
				zap.String("method", m.String()),
				zap.String("param", param),
				zap.Int("points", len(sweep.Points)))

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			return formatter.RenderSweep(cmd.OutOrStdout(), sweep)
		},
	}

	cmd.Flags().StringVar(&method, "method", string(types.MethodWeightLoss), "method to sweep (weight-loss, lpr, pitting)")
	cmd.Flags().StringVar(&param, "param", rates.ParamArea, "parameter to vary")
	cmd.Flags().Float64SliceVar(&values, "values", []float64{5, 10, 20, 30}, "values for the varied parameter")
	for _, m := range []types.Method{types.MethodWeightLoss, types.MethodLPR, types.MethodPitting} {
		addParamFlags(cmd.Flags(), types.RequiredParams(m)...)
	}
	return cmd
}
