package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultFormat    = FormatText
	DefaultDatabase  = "hdrcsv.db"
	DefaultBatchSize = 500
)

// Environment variable names.
const (
	EnvDatabase  = "HDRCSV_DB"
	EnvFormat    = "HDRCSV_FORMAT"
	EnvBatchSize = "HDRCSV_BATCH_SIZE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Ingest: IngestConfig{
			Database:  DefaultDatabase,
			BatchSize: DefaultBatchSize,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if db := os.Getenv(EnvDatabase); db != "" {
		c.Ingest.Database = db
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Output.Format = OutputFormat(format)
	}
	// An unparsable value is ignored and the file or default value stays.
	if n, err := strconv.Atoi(os.Getenv(EnvBatchSize)); err == nil {
		c.Ingest.BatchSize = n
	}
}
