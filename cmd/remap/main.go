// Package main is the entry point for the remap CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/almanac"
	"github.com/katalvlaran/remap/internal/config"
	"github.com/katalvlaran/remap/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "remap",
		Short:         "Map seed ranges through almanac stages",
		Long:          `remap reads an almanac of seeds and ordered map stages and reports the lowest value the seeds map to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(solveCmd())
	cmd.AddCommand(verifyCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// inputFlags are shared by solve and verify.
type inputFlags struct {
	envFile   string
	mode      string
	format    string
	strict    bool
	logLevel  string
	logFormat string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Seed interpretation: points or ranges (default: ranges)")
	cmd.Flags().StringVar(&f.format, "format", "", "Input format: text or yaml (default: from file extension)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject stages with overlapping rule sources")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (default: INFO)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: pretty, json (default: pretty)")
}

// loadConfig loads configuration from .env file and environment variables,
// then applies any flags the user set.
func (f *inputFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadConfig(f.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = f.strict
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = config.LogFormat(f.logFormat)
	}
	return cfg, nil
}

// readAlmanac reads from the named file, or stdin when name is empty or "-".
func (f *inputFlags) readAlmanac(cmd *cobra.Command, name string, cfg config.Config, logger *log.Logger) (*almanac.Almanac, error) {
	format := almanac.Format(f.format)
	var r io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
		if format == "" {
			format = almanac.DetectFormat(name)
		}
	}
	if format == "" {
		format = almanac.FormatText
	}

	a, err := almanac.Read(r, format, almanac.WithStrict(cfg.Strict))
	if err != nil {
		return nil, fmt.Errorf("read almanac: %w", err)
	}
	logger.Info("almanac loaded",
		"seeds", len(a.Seeds),
		"stages", len(a.Stages),
		"format", string(format),
	)
	return a, nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
