// dudist reports the file size distribution of a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/Granddave/dudist/internal/cli"
)

// version is set at build time via -ldflags.
//
//nolint:gochecknoglobals // Build-time variable
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dudist: %v\n", err)
		os.Exit(1)
	}
}
