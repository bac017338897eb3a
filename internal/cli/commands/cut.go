package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleg578/hdrcsv"
)

// CutOptions holds command-line options for the cut command.
type CutOptions struct {
	Columns []string
	CRLF    bool
}

// NewCutCommand creates the cut command.
func NewCutCommand() *cobra.Command {
	opts := &CutOptions{}

	cmd := &cobra.Command{
		Use:   "cut <file>",
		Short: "Keep only the named columns",
		Long: `Write a new file holding only the named columns, in the order given.

Rows shorter than the header yield empty values for the missing columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Columns, "columns", "c", nil, "Columns to keep (comma-separated or repeated)")
	cmd.Flags().BoolVar(&opts.CRLF, "crlf", false, "Terminate lines with CRLF")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}

func runCut(cmd *cobra.Command, args []string, opts *CutOptions) error {
	r, closeFn, err := openReader(cmd, args[0])
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	for _, col := range opts.Columns {
		if r.ColumnIndex(col) < 0 {
			return fmt.Errorf("unknown column %q (have %v)", col, r.Header())
		}
	}

	w := hdrcsv.NewWriter(cmd.OutOrStdout())
	w.UseCRLF = opts.CRLF
	if err := w.Write(opts.Columns); err != nil {
		return err
	}

	values := make([]string, len(opts.Columns))
	for {
		row, ok := r.ReadRow()
		if !ok {
			break
		}
		for i, col := range opts.Columns {
			v, err := row.Lookup(col)
			if err != nil && !errors.Is(err, hdrcsv.ErrFieldRange) {
				return err
			}
			values[i] = v
		}
		if err := w.Write(values); err != nil {
			return fmt.Errorf("line %d: %w", r.Line(), err)
		}
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading %s line %d: %w", args[0], r.Line()+1, err)
	}
	return w.Flush()
}
