// Package config provides configuration loading for the attribute CLI.
// It supports defaults, a YAML file, and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/attribution/internal/logging"
	"github.com/katalvlaran/attribution/journey"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Environment variables that override file values.
const (
	EnvJourneys     = "ATTRIBUTION_JOURNEYS"
	EnvValues       = "ATTRIBUTION_VALUES"
	EnvOutputFormat = "ATTRIBUTION_OUTPUT_FORMAT"
	EnvLogLevel     = "ATTRIBUTION_LOG_LEVEL"
)

// Config contains all attribute CLI settings.
type Config struct {
	// Input locates the journey and outcome CSV files.
	Input InputConfig `json:"input" yaml:"input"`

	// Output controls report rendering.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// InputConfig describes the CSV inputs.
type InputConfig struct {
	// Journeys is the path of the journey CSV (one row per user).
	Journeys string `json:"journeys" yaml:"journeys"`

	// Values is the path of the outcome CSV (one value per row).
	Values string `json:"values" yaml:"values"`

	// Header skips the first record of both files.
	Header bool `json:"header" yaml:"header"`

	// MissingTokens are the cell spellings read as "no touch".
	MissingTokens []string `json:"missing_tokens" yaml:"missing_tokens"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is "yaml" (default) or "json".
	Format string `json:"format" yaml:"format"`
}

// LoggingConfig configures log verbosity.
type LoggingConfig struct {
	// Level is one of debug, info (default), warn, error.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	tokens := make([]string, len(journey.DefaultMissingTokens))
	copy(tokens, journey.DefaultMissingTokens)

	return &Config{
		Input: InputConfig{
			MissingTokens: tokens,
		},
		Output:  OutputConfig{Format: FormatYAML},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration.
// Order: defaults -> path (when non-empty) -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %q (valid: yaml, json)", c.Output.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// ReadOptions translates the input settings into journey CSV options.
func (c *Config) ReadOptions() []journey.ReadOption {
	opts := []journey.ReadOption{journey.WithMissingTokens(c.Input.MissingTokens...)}
	if c.Input.Header {
		opts = append(opts, journey.WithHeader())
	}

	return opts
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvJourneys); v != "" {
		cfg.Input.Journeys = v
	}
	if v := os.Getenv(EnvValues); v != "" {
		cfg.Input.Values = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}
