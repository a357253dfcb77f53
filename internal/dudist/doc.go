// Package dudist summarizes the file size distribution of a directory tree.
//
// It walks directory trees using fastwalk for parallel traversal, collects
// the sizes of regular files above a threshold, and reduces them to a
// five-number summary rendered as a proportional box-plot.
package dudist
