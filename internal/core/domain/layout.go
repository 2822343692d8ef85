package domain

import "path/filepath"

const (
	// DatabaseFileName is the name of the compilation database CMake writes into the build directory.
	DatabaseFileName = "compile_commands.json"

	// CacheFileName is the name of the CMake build cache.
	CacheFileName = "CMakeCache.txt"

	// BuildDescriptionFileName is the file that marks a directory as a CMake source directory.
	BuildDescriptionFileName = "CMakeLists.txt"

	// HomeDirectoryMarker prefixes the cache line holding the project's source directory.
	HomeDirectoryMarker = "CMAKE_HOME_DIRECTORY:INTERNAL"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DatabasePath returns the path of the compilation database inside dir.
func DatabasePath(dir string) string {
	return filepath.Join(dir, DatabaseFileName)
}

// CachePath returns the path of the CMake cache inside the build directory.
func CachePath(buildDir string) string {
	return filepath.Join(buildDir, CacheFileName)
}

// BuildDescriptionPath returns the path of CMakeLists.txt inside the source directory.
func BuildDescriptionPath(sourceDir string) string {
	return filepath.Join(sourceDir, BuildDescriptionFileName)
}
