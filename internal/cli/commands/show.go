package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oleg578/hdrcsv"
	"github.com/oleg578/hdrcsv/internal/config"
)

// ShowOptions holds command-line options for the show command.
type ShowOptions struct {
	Format string
	Limit  int
	Peek   bool
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the rows of a file",
		Long: `Print every data row of a file.

Formats:
  text - one line per row, rendered as name=value pairs
  yaml - a YAML sequence of mappings in header order`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(config.DefaultFormat), "Output format (text|yaml)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Print at most this many rows (0 for all)")
	cmd.Flags().BoolVar(&opts.Peek, "peek", false, "Report the first row before printing, then replay it")

	return cmd
}

func runShow(cmd *cobra.Command, args []string, opts *ShowOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = config.OutputFormat(opts.Format)
	}
	if cmd.Flags().Changed("limit") {
		cfg.Output.Limit = opts.Limit
	}
	if err := config.ValidateOutput(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	r, closeFn, err := openReader(cmd, args[0])
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	out := cmd.OutOrStdout()

	if opts.Peek {
		if row, ok := r.ReadRow(); ok {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "first row: %s\n", row)
			r.PutBack(row.Fields())
		}
	}

	switch cfg.Output.Format {
	case config.FormatYAML:
		err = showYAML(out, r, cfg.Output.Limit)
	default:
		err = showText(out, r, cfg.Output.Limit)
	}
	if err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading %s line %d: %w", args[0], r.Line()+1, err)
	}
	return nil
}

func showText(out io.Writer, r *hdrcsv.Reader, limit int) error {
	for n := 0; limit == 0 || n < limit; n++ {
		row, ok := r.ReadRow()
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(out, row.String()); err != nil {
			return err
		}
	}
	return nil
}

func showYAML(out io.Writer, r *hdrcsv.Reader, limit int) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for n := 0; limit == 0 || n < limit; n++ {
		row, ok := r.ReadRow()
		if !ok {
			break
		}
		doc.Content = append(doc.Content, rowNode(row))
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// rowNode builds a mapping in header order. Repeated column names keep their
// first value, as Row.Map does.
func rowNode(row hdrcsv.Row) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	seen := make(map[string]bool)
	for _, name := range row.Header() {
		if seen[name] {
			continue
		}
		seen[name] = true
		value, err := row.Lookup(name)
		if err != nil {
			value = ""
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	return m
}
