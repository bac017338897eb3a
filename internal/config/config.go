package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration file and applies environment overrides. An empty
// path yields the defaults. The result is not validated: callers apply their
// flag overrides first and then call Validate, ValidateOutput or ValidateIngest.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := ValidateOutput(cfg); err != nil {
		return err
	}
	return ValidateIngest(cfg)
}

// ValidateOutput checks the output section only.
func ValidateOutput(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format: unsupported format %q (text|yaml)", cfg.Output.Format)
	}

	if cfg.Output.Limit < 0 {
		return errors.New("output.limit: must not be negative")
	}
	return nil
}

// ValidateIngest checks the ingest section only.
func ValidateIngest(cfg *Config) error {
	if cfg.Ingest.Database == "" {
		return errors.New("ingest.database: path is required")
	}

	if cfg.Ingest.BatchSize <= 0 {
		return fmt.Errorf("ingest.batch_size: must be positive, got %d", cfg.Ingest.BatchSize)
	}

	return nil
}
