// Package cmd provides the CLI commands for corrosion-rate.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"corrosion-rate/core/engine"
	"corrosion-rate/core/output"
	"corrosion-rate/core/units"
	"corrosion-rate/internal/config"
	"corrosion-rate/internal/logging"
)

// rootOptions holds the persistent flags. The configuration they resolve to is
// published through config.Set.
type rootOptions struct {
	cfgFile string
	envFile string
	format  string
	unit    string
	verbose bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "corrosion-rate",
		Short: "Compute corrosion rates and screen materials",
		Long: `corrosion-rate computes corrosion rates from weight-loss, linear
polarization resistance and pitting-depth measurements, and suggests
candidate materials for a chloride/pH/temperature environment.

Examples:
  corrosion-rate weight-loss --W_mg 500 --density_g_cm3 7.85 --A_cm2 10 --t_h 100
  corrosion-rate lpr --B_mV 26 --Rp_ohm_cm2 100 --EW_g_per_equiv 27.92 --density_g_cm3 7.85
  corrosion-rate suggest --chloride_ppm 5000 --pH 5 --temp_C 70
  corrosion-rate evaluate samples.hcl --format markdown --pdf report.pdf`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.corrosion-rate.json)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with CORROSION_* overrides")
	flags.StringVarP(&opts.format, "format", "f", "", "output format (cli, json, markdown)")
	flags.StringVar(&opts.unit, "unit", "", "unit for uniform rates (mm/y, mpy)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	for _, m := range methodCommands {
		rootCmd.AddCommand(newMethodCmd(opts, m))
	}
	rootCmd.AddCommand(newEvaluateCmd(opts))
	rootCmd.AddCommand(newSweepCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

// initConfig resolves configuration in order: file, .env, CORROSION_*
// environment, then command-line flags.
func (o *rootOptions) initConfig(cmd *cobra.Command) error {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.LoadEnv(o.envFile); err != nil {
		return err
	}

	if o.format != "" {
		cfg.Output.DefaultFormat = o.format
	}
	if o.unit != "" {
		u, err := units.ParseUnit(o.unit)
		if err != nil {
			return err
		}
		cfg.Output.Unit = u
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}
	config.Set(cfg)
	return nil
}

func (o *rootOptions) engine() *engine.Engine {
	return engine.New(nil, engine.Config{Precision: config.Get().Output.Precision})
}

func (o *rootOptions) formatter() (output.Formatter, error) {
	cfg := config.Get()
	registry := output.NewRegistry(output.Options{
		Unit:         cfg.Output.Unit,
		ShowSeverity: cfg.Output.ShowSeverity,
	})
	return registry.Get(cfg.Output.DefaultFormat)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "corrosion-rate version %s\n", engine.Version)
		},
	}
}
