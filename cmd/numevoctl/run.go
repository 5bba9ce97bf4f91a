package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numevo/internal/config"
	"numevo/internal/metrics"
	"numevo/internal/report"
	"numevo/pkg/numevo"
)

type runOptions struct {
	profile     string
	configPath  string
	seed        int64
	population  int
	diagnostics bool
	metrics     bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one evolutionary simulation and print the final population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.profile, "profile", "double", "Built-in profile name (see numevoctl profiles)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML profile file; overrides --profile")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 keeps the profile seed; a zero profile seed is non-deterministic)")
	cmd.Flags().IntVar(&opts.population, "population", 0, "Population size override")
	cmd.Flags().BoolVar(&opts.diagnostics, "diagnostics", false, "Print a per-generation diagnostics table after the report")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Dump run metrics in Prometheus text format to stderr")
	return cmd
}

func runSimulation(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	profile, err := resolveProfile(opts)
	if err != nil {
		return err
	}
	if err := profile.ApplyEnv(lookupEnv); err != nil {
		return err
	}
	if opts.seed != 0 {
		profile.Seed = opts.seed
	}
	if opts.population != 0 {
		profile.Population = opts.population
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	runMetrics := metrics.NewRunMetrics()
	client := numevo.NewClient(numevo.Options{Logger: root.logger, Observer: runMetrics})
	summary, err := client.Run(profile.RunRequest(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if opts.diagnostics {
		report.WriteDiagnostics(cmd.OutOrStdout(), fmt.Sprintf("%s (run %s)", profile.Name, summary.RunID), summary.Diagnostics)
	}
	if opts.metrics {
		if err := runMetrics.WriteText(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	return nil
}

func resolveProfile(opts *runOptions) (config.Profile, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}
	return config.Builtin(opts.profile)
}
