package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg578/hdrcsv"
	"github.com/oleg578/hdrcsv/internal/config"
)

// ConfigFlag is the persistent flag naming the YAML config file.
const ConfigFlag = "config"

// loadConfig reads the file named by --config, or the defaults when unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := ""
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		path = f.Value.String()
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openReader opens path ("-" for stdin) and consumes its header line. The
// returned close function must be called once the Reader is done.
func openReader(cmd *cobra.Command, path string) (*hdrcsv.Reader, func() error, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(cmd.InOrStdin())
	} else {
		f, err := os.Open(path) // #nosec G304 -- user-provided input path is expected
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		src = f
	}

	r, err := hdrcsv.NewReader(src)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r, src.Close, nil
}
