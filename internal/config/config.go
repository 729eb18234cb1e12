// Package config provides application configuration.
package config

import "strings"

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Default values. Struct tag defaults in env.go must match these.
const (
	DefaultLogLevel      = "INFO"
	DefaultLogFormat     = "pretty"
	DefaultMode          = "ranges"
	DefaultScanWorkers   = 4
	DefaultScanBatchSize = 1_000_000
	DefaultScanMaxValues = 100_000_000
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel  string
	LogFormat LogFormat
	// Mode is the seed interpretation: points or ranges.
	Mode string
	// Strict rejects stages with overlapping rule sources.
	Strict bool
	Scan   ScanConfig
}

// ScanConfig tunes the brute-force cross-check.
type ScanConfig struct {
	Workers   int
	BatchSize int
	MaxValues int
}

// NewConfig returns a Config populated with defaults.
func NewConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPretty,
		Mode:      DefaultMode,
		Scan: ScanConfig{
			Workers:   DefaultScanWorkers,
			BatchSize: DefaultScanBatchSize,
			MaxValues: DefaultScanMaxValues,
		},
	}
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
