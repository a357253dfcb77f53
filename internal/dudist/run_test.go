package dudist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file of the given size, creating parent directories as
// needed.
func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
}

func TestRunThresholdIsStrict(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "small.bin", 100)
	writeFile(t, dir, "edge.bin", 4096)
	writeFile(t, dir, "a.bin", 5000)
	writeFile(t, filepath.Join(dir, "sub"), "b.bin", 10000)

	stats, err := Run(context.Background(), Options{Path: dir, MinSize: 4096}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.FileCount)
	assert.Equal(t, int64(15000), stats.TotalBytes)
	assert.Equal(t, uint64(5000), stats.Distribution.Min)
	assert.Equal(t, uint64(10000), stats.Distribution.Max)
	assert.InDelta(t, 7500, stats.Distribution.Median, 0)
}

func TestRunNoFiles(t *testing.T) {
	stats, err := Run(context.Background(), Options{Path: t.TempDir(), MinSize: 4096}, nil)

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestRunAllFilesBelowThreshold(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.txt", 10)

	_, err := Run(context.Background(), Options{Path: dir, MinSize: 4096}, nil)

	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestRunExcludePattern(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "node_modules"), "big.js", 8192)
	writeFile(t, dir, "keep.go", 8192)

	opt := Options{Path: dir, Excludes: []string{`.*node_modules/.*`}}

	stats, err := Run(context.Background(), opt, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.FileCount)
	assert.Equal(t, int64(8192), stats.TotalBytes)
}

func TestRunExtensionFilter(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "a.go", 8192)
	writeFile(t, dir, "b.md", 8192)
	writeFile(t, dir, "a_test.go", 8192)

	tests := []struct {
		name       string
		extensions []string
		wantCount  int64
	}{
		{name: "include suffix", extensions: []string{".go"}, wantCount: 2},
		{name: "exclude suffix", extensions: []string{"!.md"}, wantCount: 2},
		{name: "include and exclude", extensions: []string{".go", "!_test.go"}, wantCount: 1},
		{name: "no filter", extensions: nil, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := Run(context.Background(), Options{Path: dir, Extensions: tt.extensions}, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCount, stats.FileCount)
		})
	}
}

func TestRunDepthLimit(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "top.bin", 8192)
	writeFile(t, filepath.Join(dir, "a", "b"), "deep.bin", 8192)

	stats, err := Run(context.Background(), Options{Path: dir, Depth: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.FileCount)
}

func TestRunNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.bin", 8192)

	_, err := Run(context.Background(), Options{Path: filepath.Join(dir, "file.bin")}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestRunMissingPath(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope")}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessing path")
}

func TestRunInvalidExcludePattern(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: t.TempDir(), Excludes: []string{`[`}}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling exclusion pattern")
}
