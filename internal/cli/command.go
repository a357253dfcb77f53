package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Granddave/dudist/internal/dudist"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// DefaultExcludes contains the default exclusion patterns.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludes = []string{`.*\.git/.*`, `.*node_modules/.*`}

// DefaultMinSize is the size threshold applied when --min-size is not given.
const DefaultMinSize = "4KiB"

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    dudist.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "dudist [flags] [path]",
		Short: "Summarize the file size distribution of a directory tree",
		Long: heredoc.Doc(`
			dudist scans a directory tree and summarizes the distribution of file
			sizes above a threshold.

			It reports the five-number summary (smallest, lower quartile, median,
			upper quartile, largest) of the qualifying sizes and draws a proportional
			box-plot scaled to the terminal width.

			Positional Arguments:
			  path                   Directory to analyze. Defaults to current directory if not specified.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if options.Version {
				//nolint:forbidigo // Version output to console
				fmt.Println(c.version)

				return nil
			}

			if !slices.Contains(allowedOutputs, strings.ToLower(options.Output)) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			if options.Width < 0 {
				return errors.New("width cannot be negative")
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			// Parse minSize string to bytes
			size, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe

			return logic(options)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(
		&options.Extensions,
		"ext",
		"x",
		[]string{},
		"File suffixes to include (e.g., .go,.md). Use '!' prefix to exclude (e.g., !.log,!_test.go)",
	)
	flags.StringVar(&minSizeStr, "min-size", DefaultMinSize, "Size threshold; only files strictly larger are counted")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", DefaultExcludes, "Regex patterns to exclude")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	flags.IntVarP(&options.Width, "width", "w", 0, "Box-plot width in columns (0=detect from terminal)")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.SortFlags = false

	return cmd.Execute()
}
