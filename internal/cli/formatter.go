package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Granddave/dudist/internal/dudist"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// iecSizes are the binary byte-magnitude units used by FormatIBytes.
//
//nolint:gochecknoglobals // Unit ladder constant
var iecSizes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatIBytes renders size with an automatically chosen binary unit and two
// decimal places, e.g. 1536 -> "1.50 KiB". It satisfies dudist.ByteFormatter.
// humanize.IBytes is not used here since it rounds to significant digits and
// exposes no precision control.
func FormatIBytes(size uint64) string {
	value := float64(size)
	unit := 0

	for value >= humanize.KiByte && unit < len(iecSizes)-1 {
		value /= humanize.KiByte
		unit++
	}

	return fmt.Sprintf("%.2f %s", value, iecSizes[unit])
}

// roundBytes converts an interpolated statistic to whole bytes for display.
func roundBytes(v float64) uint64 {
	return uint64(math.Round(v))
}

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *dudist.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the distribution summary, the box-plot bar, and a short
// stats footer in human-readable form. width is the bar canvas width in
// columns.
func PrintTable(stats *dudist.Stats, width int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	dist := stats.Distribution

	// Five-number summary
	fmt.Fprintf(w, "Smallest:\t%s\n", FormatIBytes(dist.Min))
	fmt.Fprintf(w, "Lower Quartile:\t%s\n", FormatIBytes(roundBytes(dist.LowerQuartile)))
	fmt.Fprintf(w, "Median:\t%s\n", FormatIBytes(roundBytes(dist.Median)))
	fmt.Fprintf(w, "Upper Quartile:\t%s\n", FormatIBytes(roundBytes(dist.UpperQuartile)))
	fmt.Fprintf(w, "Largest:\t%s\n", FormatIBytes(dist.Max))

	if err := w.Flush(); err != nil {
		return err
	}

	// Bar line bypasses the tabwriter so glyph columns stay untouched
	fmt.Fprintf(writer, "\n%s\n", dudist.BarLine(dist, width, FormatIBytes))

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", stats.FileCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(stats.TotalBytes)), stats.TotalBytes) //nolint:gosec // Bytes is always positive

	if stats.ErrorCount > 0 {
		fmt.Fprintf(w, "Errors:\t%d\n", stats.ErrorCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
