// hdrcsv - header-first CSV inspection and loading tool.
package main

import (
	"os"

	"github.com/oleg578/hdrcsv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
