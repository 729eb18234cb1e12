package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/almanac"
	"github.com/katalvlaran/remap/internal/log"
	"github.com/katalvlaran/remap/scan"
)

// errMismatch reports disagreement between the interval pipeline and the scan.
var errMismatch = errors.New("interval pipeline and brute-force scan disagree")

func verifyCmd() *cobra.Command {
	var (
		flags     inputFlags
		workers   int
		batchSize int
		maxValues int
	)

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Cross-check the interval pipeline against a brute-force scan",
		Long: `Cross-check the interval pipeline against a brute-force scan.

Every seed value is looked up individually, so this is only practical for
small inputs. The scan refuses to run past --max-values.

Environment variables (in addition to those of solve):
  REMAP_SCAN_WORKERS           Concurrent batches (default: 4)
  REMAP_SCAN_BATCH_SIZE        Values per batch (default: 1000000)
  REMAP_SCAN_MAX_VALUES        Value cap, 0 disables (default: 100000000)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Scan.Workers = workers
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.Scan.BatchSize = batchSize
			}
			if cmd.Flags().Changed("max-values") {
				cfg.Scan.MaxValues = maxValues
			}
			logger := log.NewLogger(cmd.ErrOrStderr(), cfg)

			mode, err := almanac.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}
			a, err := flags.readAlmanac(cmd, inputName(args), cfg, logger)
			if err != nil {
				return err
			}
			seeds, err := a.SeedIntervals(mode)
			if err != nil {
				return err
			}

			want, err := a.Pipeline().Lowest(seeds)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			got, err := scan.Lowest(ctx, a.Pipeline(), seeds, scan.Options{
				Workers:   cfg.Scan.Workers,
				BatchSize: cfg.Scan.BatchSize,
				MaxValues: cfg.Scan.MaxValues,
				Logger:    logger.Slog(),
			})
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			logger.Info("scan finished", "lowest", got, "elapsed", time.Since(start))

			if got != want {
				return fmt.Errorf("%w: pipeline %d, scan %d", errMismatch, want, got)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %d\n", want)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent batches (default: 4)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Values per batch (default: 1000000)")
	cmd.Flags().IntVar(&maxValues, "max-values", 0, "Value cap, 0 disables (default: 100000000)")

	return cmd
}
