package ports

//go:generate go run go.uber.org/mock/mockgen -source=cmake.go -destination=mocks/mock_cmake.go -package=mocks

// CacheReader reads the CMake build cache.
type CacheReader interface {
	// Lines returns the raw lines of CMakeCache.txt in the build directory.
	Lines(buildDir string) ([]string, error)
}

// SourceResolver finds the project source directory recorded in the build cache.
type SourceResolver interface {
	// Resolve returns the source directory named by the cache lines after checking
	// that it holds a CMakeLists.txt.
	Resolve(lines []string) (string, error)
}
