package cmake

import (
	"errors"
	"io"
	"os"

	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements ports.SourceResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the source directory recorded in the cache lines.
// The directory must contain a readable CMakeLists.txt.
func (r *Resolver) Resolve(lines []string) (string, error) {
	dir, err := domain.HomeDirectory(lines)
	if err != nil {
		return "", err
	}

	if dir == "" {
		return "", zerr.With(domain.ErrBuildDescriptionMissing, "reason", "empty source directory")
	}

	path := domain.BuildDescriptionPath(dir)

	//nolint:gosec // Path comes from the CMake cache of the build being fixed
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBuildDescriptionMissing.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Only opened to prove readability

	// A directory named CMakeLists.txt opens fine but cannot be read.
	if _, err := f.Read(make([]byte, 1)); err != nil && !errors.Is(err, io.EOF) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBuildDescriptionMissing.Error()), "path", path)
	}

	return dir, nil
}
