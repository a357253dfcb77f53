package dudist

import (
	"sync"
	"time"
)

// Stats holds the outcome of a directory walk.
type Stats struct {
	// Distribution is the five-number summary of the collected sizes.
	Distribution Distribution `json:"distribution"`
	// FileCount is the number of files above the size threshold.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of the counted files.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of errors encountered during the walk.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures the directory walk and CLI behavior.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Extensions to include (empty = all). '!' prefix excludes.
	Extensions []string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// MinSize is the size threshold in bytes; only strictly larger files
	// are counted.
	MinSize int64
	// Depth is the maximum traversal depth (0=unlimited).
	Depth int
	// Width forces the bar width in columns (0=detect from terminal).
	Width int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// collector accumulates file sizes from concurrent fastwalk callbacks using
// a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	sizes      []uint64
	fileCount  int64
	totalBytes int64
	errorCount int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		sizes: make([]uint64, 0),
	}
}

// addError increments the error counter. This operation is protected by a
// mutex since fastwalk calls the callback from multiple goroutines
// concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records one qualifying file size. This operation is protected by a
// mutex since fastwalk calls the callback from multiple goroutines
// concurrently.
func (c *collector) add(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sizes = append(c.sizes, uint64(size)) //nolint:gosec // Regular file sizes are non-negative
	c.fileCount++
	c.totalBytes += size
}

// snapshot returns the current file and byte counters for progress reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize reduces the collected sizes to the final Stats.
// It returns ErrNoFiles when nothing qualified during the walk.
func (c *collector) finalize() (*Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dist, err := NewDistribution(c.sizes)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Distribution: dist,
		FileCount:    c.fileCount,
		TotalBytes:   c.totalBytes,
		ErrorCount:   c.errorCount,
	}, nil
}
