package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/almanac"
	"github.com/katalvlaran/remap/internal/log"
	"github.com/katalvlaran/remap/pipeline"
)

func solveCmd() *cobra.Command {
	var (
		flags     inputFlags
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the lowest value the seeds map to",
		Long: `Print the lowest value the seeds map to.

Reads the almanac from file, or from stdin when no file (or "-") is given.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  REMAP_LOG_LEVEL              Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  REMAP_LOG_FORMAT             Log format: pretty, json (default: pretty)
  REMAP_MODE                   Seed interpretation: points, ranges (default: ranges)
  REMAP_STRICT                 Reject overlapping rules (default: false)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, &flags, inputName(args), normalize)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Merge overlapping ranges after every stage")

	return cmd
}

func runSolve(cmd *cobra.Command, flags *inputFlags, name string, normalize bool) error {
	cfg, err := flags.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg)

	mode, err := almanac.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	a, err := flags.readAlmanac(cmd, name, cfg, logger)
	if err != nil {
		return err
	}

	lowest, err := a.Solve(mode,
		pipeline.WithLogger(logger.Slog()),
		pipeline.WithNormalize(normalize),
	)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logger.Info("solved", "mode", string(mode), "lowest", lowest)

	fmt.Fprintln(cmd.OutOrStdout(), lowest)
	return nil
}
