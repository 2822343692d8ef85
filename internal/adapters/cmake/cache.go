// Package cmake reads the CMake build cache and locates the project source directory.
package cmake

import (
	"bufio"
	"os"

	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single cache line. Cached lists such as link libraries can be long.
const maxLineSize = 4 << 20

var _ ports.CacheReader = (*CacheReader)(nil)

// CacheReader implements ports.CacheReader for CMakeCache.txt.
type CacheReader struct{}

// NewCacheReader creates a new CacheReader.
func NewCacheReader() *CacheReader {
	return &CacheReader{}
}

// Lines returns the lines of CMakeCache.txt in buildDir without their line terminators.
func (r *CacheReader) Lines(buildDir string) ([]string, error) {
	path := domain.CachePath(buildDir)

	//nolint:gosec // Path is built from the build directory given on the command line
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	return lines, nil
}
