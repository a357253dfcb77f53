package dudist

import (
	"fmt"
	"math"
	"strings"
)

// Shade glyphs for the box-plot bar, by distance from the median.
const (
	lightShade  = "░" // min to lower quartile, upper quartile to max
	mediumShade = "▒" // lower quartile to median, median to upper quartile
	darkShade   = "▓" // the median column
)

const (
	// LabelMargin is the number of columns reserved for the two byte labels
	// printed around the bar.
	LabelMargin = 40
	// DefaultTerminalWidth is assumed when no terminal width can be detected.
	DefaultTerminalWidth = 80
)

// WidthFunc reports the current terminal width in columns. ok is false when
// standard output is not an interactive terminal.
type WidthFunc func() (width int, ok bool)

// ByteFormatter renders a raw byte count as a human-readable string.
type ByteFormatter func(size uint64) string

// CanvasWidth derives the bar width from the terminal width, reserving
// LabelMargin columns for the byte labels around the bar. Terminals narrower
// than the margin clamp to a single column instead of failing.
func CanvasWidth(terminal int) int {
	width := terminal - LabelMargin
	if width < 1 {
		return 1
	}

	return width
}

// Plot renders dist as one proportional bar spanning width columns.
//
// Each summary value maps to column round(v/maxValue*width). The half-open
// segments between consecutive positions carry the shade glyphs; segments
// whose boundaries coincide render zero glyphs. The dark median column is
// always drawn, even when it lands on another boundary. A zero maxValue
// collapses every position to column zero.
func Plot(dist Distribution, maxValue uint64, width int) string {
	if width < 1 {
		width = 1
	}

	pos := func(v float64) int {
		if maxValue == 0 {
			return 0
		}

		return int(math.Round(v / float64(maxValue) * float64(width)))
	}

	min := pos(float64(dist.Min))
	lower := pos(dist.LowerQuartile)
	median := pos(dist.Median)
	upper := pos(dist.UpperQuartile)
	max := pos(float64(dist.Max))

	var bar strings.Builder

	segment(&bar, " ", min)
	segment(&bar, lightShade, lower-min)
	segment(&bar, mediumShade, median-lower)
	bar.WriteString(darkShade)
	segment(&bar, mediumShade, upper-median-1)
	segment(&bar, lightShade, max-upper)
	segment(&bar, " ", width-max)

	return bar.String()
}

// BarLine assembles the labeled bar line, delegating the byte labels to
// format. The bar is scaled against dist.Max so the largest size reaches the
// right edge of the canvas.
func BarLine(dist Distribution, width int, format ByteFormatter) string {
	bar := Plot(dist, dist.Max, width)

	return fmt.Sprintf("Smallest: %s %s Largest: %s", format(dist.Min), bar, format(dist.Max))
}

// segment appends glyph count times, treating negative counts as empty.
func segment(bar *strings.Builder, glyph string, count int) {
	if count > 0 {
		bar.WriteString(strings.Repeat(glyph, count))
	}
}
