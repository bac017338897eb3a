// Package cli provides the command-line interface for hdrcsv.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg578/hdrcsv/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		// SilenceErrors keeps cobra from printing it twice.
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hdrcsv",
		Short: "Inspect and load header-first CSV files",
		Long: `hdrcsv reads comma-separated files whose first line names the columns.

Fields are split on every comma; there is no quoting. Use "-" as the file
argument to read standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to a YAML config file")

	rootCmd.AddCommand(commands.NewHeaderCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCutCommand())
	rootCmd.AddCommand(commands.NewIngestCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
