package dudist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotProportional(t *testing.T) {
	dist := Distribution{Min: 0, Max: 100, LowerQuartile: 25, Median: 50, UpperQuartile: 75}

	bar := []rune(Plot(dist, 100, 100))
	require.Len(t, bar, 100)

	for i, glyph := range bar {
		var want rune

		switch {
		case i < 25:
			want = '░'
		case i < 50:
			want = '▒'
		case i == 50:
			want = '▓'
		case i < 75:
			want = '▒'
		default:
			want = '░'
		}

		assert.Equal(t, string(want), string(glyph), "column %d", i)
	}
}

func TestPlotLeadingAndTrailingBlanks(t *testing.T) {
	dist := Distribution{Min: 20, Max: 80, LowerQuartile: 30, Median: 50, UpperQuartile: 70}

	bar := Plot(dist, 100, 10)

	// Positions: 2, 3, 5, 7, 8.
	assert.Equal(t, "  ░▒▒▓▒░  ", bar)
}

func TestPlotCoincidingPositions(t *testing.T) {
	// Tight cluster: everything lands on the same column, so every segment
	// renders zero glyphs and only the median column remains.
	dist := Distribution{Min: 1000, Max: 1001, LowerQuartile: 1000, Median: 1000.5, UpperQuartile: 1001}

	bar := Plot(dist, 100000, 50)

	assert.Equal(t, " ▓"+strings.Repeat(" ", 49), bar)
}

func TestPlotZeroMaxValue(t *testing.T) {
	bar := Plot(Distribution{}, 0, 10)

	assert.Equal(t, "▓"+strings.Repeat(" ", 10), bar)
}

func TestPlotClampsWidth(t *testing.T) {
	dist := Distribution{Min: 5, Max: 5, LowerQuartile: 5, Median: 5, UpperQuartile: 5}

	assert.NotPanics(t, func() {
		Plot(dist, 5, 0)
		Plot(dist, 5, -3)
	})
}

func TestBarLine(t *testing.T) {
	dist := Distribution{Min: 0, Max: 100, LowerQuartile: 25, Median: 50, UpperQuartile: 75}
	format := func(size uint64) string { return fmt.Sprintf("%db", size) }

	line := BarLine(dist, 4, format)

	// Positions: 0, 1, 2, 3, 4; the dark column takes the first slot after
	// the median boundary.
	assert.Equal(t, "Smallest: 0b ░▒▓░ Largest: 100b", line)
}

func TestCanvasWidth(t *testing.T) {
	tests := []struct {
		name     string
		terminal int
		want     int
	}{
		{name: "wide terminal", terminal: 120, want: 80},
		{name: "default terminal", terminal: DefaultTerminalWidth, want: 40},
		{name: "exactly the margin", terminal: LabelMargin, want: 1},
		{name: "narrower than the margin", terminal: 10, want: 1},
		{name: "zero", terminal: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanvasWidth(tt.terminal))
		})
	}
}
