package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corrosion-rate/adapters/report"
	"corrosion-rate/adapters/samples"
	"corrosion-rate/internal/config"
	"corrosion-rate/internal/logging"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var (
		pdfPath     string
		failOnError bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <file>",
		Short: "Evaluate a batch of samples from a file",
		Long: `Evaluate every sample in an HCL, YAML, JSON or XLSX file. Samples that
fail validation are reported alongside the others and do not stop the batch.

Examples:
  corrosion-rate evaluate samples.hcl
  corrosion-rate evaluate coupons.xlsx --format json
  corrosion-rate evaluate samples.yaml --pdf report.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			logging.Info("loading samples", zap.String("path", path))
			batch, err := samples.Load(ctx, path)
			if err != nil {
				return err
			}

			rep, err := opts.engine().EvaluateAll(ctx, batch)
			if err != nil {
				return err
			}
			rep.Source = path

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			if err := formatter.Render(cmd.OutOrStdout(), rep); err != nil {
				return err
			}

			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return err
				}
				cfg := config.Get()
				err = report.WritePDF(f, rep, report.Options{
					Title:  cfg.Report.Title,
					Author: cfg.Report.Author,
					Unit:   cfg.Output.Unit,
				})
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return err
				}
				logging.Info("report written", zap.String("path", pdfPath))
			}

			if failOnError && rep.Failed > 0 {
				for _, r := range rep.Results {
					if r.Failed() {
						logging.Error("sample failed",
							zap.String("path", path),
							zap.String("sample", r.SampleID),
							zap.String("error", r.Error))
					}
				}
				return fmt.Errorf("%d of %d samples failed", rep.Failed, len(rep.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write a PDF report to this path")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit non-zero when any sample fails")
	return cmd
}
