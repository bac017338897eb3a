// Package config provides configuration loading and validation for the hdrcsv CLI.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Ingest IngestConfig `yaml:"ingest"`
}

// OutputFormat selects how the show command prints rows.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig controls row printing.
type OutputConfig struct {
	// Format is text (one rendered row per line) or yaml.
	Format OutputFormat `yaml:"format"`

	// Limit caps the number of rows printed. Zero means no limit.
	Limit int `yaml:"limit"`
}

// IngestConfig controls loading rows into SQLite.
type IngestConfig struct {
	// Database is the SQLite file path.
	Database string `yaml:"database"`

	// Table overrides the destination table. Empty derives it from the file name.
	Table string `yaml:"table,omitempty"`

	// BatchSize is the number of rows per INSERT.
	BatchSize int `yaml:"batch_size"`
}
