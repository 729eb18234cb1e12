package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. REMAP_LOG_LEVEL.
const EnvPrefix = "REMAP"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: REMAP_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: REMAP_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Mode selects how seeds are read.
	// Env: REMAP_MODE (default: ranges)
	Mode string `envconfig:"MODE" default:"ranges"`

	// Strict rejects overlapping rules while parsing.
	// Env: REMAP_STRICT (default: false)
	Strict bool `envconfig:"STRICT" default:"false"`

	// Scan configures the brute-force cross-check.
	Scan ScanEnv `envconfig:"SCAN"`
}

// ScanEnv holds environment configuration for the scanner.
type ScanEnv struct {
	// Workers is the number of concurrent batches.
	// Env: REMAP_SCAN_WORKERS (default: 4)
	Workers int `envconfig:"WORKERS" default:"4"`

	// BatchSize is the number of values per batch.
	// Env: REMAP_SCAN_BATCH_SIZE (default: 1000000)
	BatchSize int `envconfig:"BATCH_SIZE" default:"1000000"`

	// MaxValues caps the values a scan may visit.
	// Env: REMAP_SCAN_MAX_VALUES (default: 100000000)
	MaxValues int `envconfig:"MAX_VALUES" default:"100000000"`
}

// LoadFromEnv loads configuration from REMAP_-prefixed environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToConfig converts EnvConfig to Config.
func (e EnvConfig) ToConfig() Config {
	cfg := NewConfig()
	if e.LogLevel != "" {
		cfg.LogLevel = strings.ToUpper(e.LogLevel)
	}
	cfg.LogFormat = parseLogFormat(e.LogFormat)
	if e.Mode != "" {
		cfg.Mode = strings.ToLower(e.Mode)
	}
	cfg.Strict = e.Strict
	if e.Scan.Workers > 0 {
		cfg.Scan.Workers = e.Scan.Workers
	}
	if e.Scan.BatchSize > 0 {
		cfg.Scan.BatchSize = e.Scan.BatchSize
	}
	cfg.Scan.MaxValues = e.Scan.MaxValues
	return cfg
}
