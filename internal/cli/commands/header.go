package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHeaderCommand creates the header command.
func NewHeaderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "List the columns of a file",
		Long:  "Print each column of the header line as <index><TAB><name>, counting from 0.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openReader(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			out := cmd.OutOrStdout()
			for i := range r.Header() {
				if _, err := fmt.Fprintf(out, "%d\t%s\n", i, r.ColumnName(i)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
