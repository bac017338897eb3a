package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleg578/hdrcsv/internal/config"
	"github.com/oleg578/hdrcsv/internal/store"
)

// IngestOptions holds command-line options for the ingest command.
type IngestOptions struct {
	Database  string
	Table     string
	BatchSize int
	Verbose   bool
}

// NewIngestCommand creates the ingest command.
func NewIngestCommand() *cobra.Command {
	opts := &IngestOptions{}

	cmd := &cobra.Command{
		Use:   "ingest <file>",
		Short: "Load rows into a SQLite table",
		Long: `Load every data row into a SQLite table, creating it when missing.

Column names are normalised to lowercase SQL identifiers; repeated names get
a numeric suffix. Each row also records its source line. The load is a single
transaction and is tracked in the ingest_runs table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", config.DefaultDatabase, "SQLite database path")
	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Destination table (default: derived from file name)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", config.DefaultBatchSize, "Rows per INSERT")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Report the run id and columns")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string, opts *IngestOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Ingest.Database = opts.Database
	}
	if cmd.Flags().Changed("table") {
		cfg.Ingest.Table = opts.Table
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.Ingest.BatchSize = opts.BatchSize
	}
	if err := config.ValidateIngest(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	table := cfg.Ingest.Table
	if table == "" {
		table = store.TableFor(args[0])
	}

	r, closeFn, err := openReader(cmd, args[0])
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	s, err := store.Open(cfg.Ingest.Database)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	run, err := s.Ingest(ctx, r, store.IngestOptions{
		Source:    args[0],
		Table:     table,
		BatchSize: cfg.Ingest.BatchSize,
	})
	if opts.Verbose && run != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %s -> %s (%s) status=%s\n",
			run.ID, run.Source, run.Target, run.Columns, run.Status)
	}
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", args[0], err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ingested %d rows into %s\n", run.RowCount, run.Target)
	return nil
}
