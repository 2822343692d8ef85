package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// HomeDirectory extracts the project source directory from the lines of a CMake cache.
// Exactly one line must start with HomeDirectoryMarker; its value after the first '=' is
// returned with surrounding whitespace removed.
func HomeDirectory(lines []string) (string, error) {
	var matches []string
	for _, line := range lines {
		if strings.HasPrefix(line, HomeDirectoryMarker) {
			matches = append(matches, line)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrHomeDirectoryMissing
	case 1:
	default:
		return "", zerr.With(ErrHomeDirectoryAmbiguous, "count", len(matches))
	}

	_, value, _ := strings.Cut(matches[0], "=")
	return strings.TrimSpace(value), nil
}
