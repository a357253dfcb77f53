package dudist

import (
	"errors"
	"slices"
)

// ErrNoFiles is returned when a walk yields no file sizes to summarize.
var ErrNoFiles = errors.New("no files found")

// Distribution is the five-number summary of a set of file sizes.
// It is constructed once by NewDistribution and read-only afterwards.
type Distribution struct {
	// Min is the smallest observed size in bytes.
	Min uint64 `json:"min"`
	// Max is the largest observed size in bytes.
	Max uint64 `json:"max"`
	// Median is the interpolated midpoint.
	Median float64 `json:"median"`
	// LowerQuartile is the interpolated 25th-percentile point.
	LowerQuartile float64 `json:"lower_quartile"`
	// UpperQuartile is the interpolated 75th-percentile point.
	UpperQuartile float64 `json:"upper_quartile"`
}

// NewDistribution computes the five-number summary of sizes.
// It sorts sizes in place and returns ErrNoFiles for empty input.
//
// The median and quartiles follow a fixed index-selection rule rather than a
// standard interpolating percentile: with n values, the statistic at fraction
// m/d sits at index n*m/d, averaged with its left neighbour when n*m divides
// evenly by d. For n < 4 the quartiles collapse onto min and max; that
// coarseness at small sample sizes is inherent to the rule and kept for
// output compatibility.
func NewDistribution(sizes []uint64) (Distribution, error) {
	if len(sizes) == 0 {
		return Distribution{}, ErrNoFiles
	}

	slices.Sort(sizes)

	return Distribution{
		Min:           sizes[0],
		Max:           sizes[len(sizes)-1],
		Median:        orderStat(sizes, 1, 2),
		LowerQuartile: orderStat(sizes, 1, 4),
		UpperQuartile: orderStat(sizes, 3, 4),
	}, nil
}

// orderStat selects the statistic at fraction mul/div from the sorted sizes.
func orderStat(sizes []uint64, mul, div int) float64 {
	n := len(sizes)

	idx := n * mul / div
	if n*mul%div == 0 {
		return float64(sizes[idx-1]+sizes[idx]) / 2 //nolint:mnd // Midpoint of the two straddling elements
	}

	return float64(sizes[idx])
}
