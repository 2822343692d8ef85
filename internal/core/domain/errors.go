package domain

import "go.trai.ch/zerr"

var (
	// ErrDatabaseReadFailed is returned when compile_commands.json cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseParseFailed is returned when compile_commands.json is not a JSON array of objects.
	ErrDatabaseParseFailed = zerr.New("failed to parse compilation database")

	// ErrEntryMissingCommand is returned when a database entry has no string "command" field.
	ErrEntryMissingCommand = zerr.New("compilation database entry has no command")

	// ErrDatabaseEncodeFailed is returned when the rewritten database cannot be serialized.
	ErrDatabaseEncodeFailed = zerr.New("failed to encode compilation database")

	// ErrDatabaseWriteFailed is returned when the rewritten database cannot be written.
	ErrDatabaseWriteFailed = zerr.New("failed to write compilation database")

	// ErrCacheReadFailed is returned when CMakeCache.txt cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read CMake cache")

	// ErrHomeDirectoryMissing is returned when no cache line carries the home directory marker.
	ErrHomeDirectoryMissing = zerr.New("no line in the CMake cache starts with " + HomeDirectoryMarker)

	// ErrHomeDirectoryAmbiguous is returned when several cache lines carry the home directory marker.
	ErrHomeDirectoryAmbiguous = zerr.New("too many lines in the CMake cache start with " + HomeDirectoryMarker)

	// ErrBuildDescriptionMissing is returned when the source directory has no readable CMakeLists.txt.
	ErrBuildDescriptionMissing = zerr.New("source directory has no readable " + BuildDescriptionFileName)

	// ErrUnknownLibrary is returned when a /usr/local include path names a library absent from the remap table.
	ErrUnknownLibrary = zerr.New("library is not in the remap table")

	// ErrRewriteFailed is returned when a database entry's command cannot be rewritten.
	ErrRewriteFailed = zerr.New("failed to rewrite compile command")

	// ErrSysrootRequired is returned when the sysroot argument is empty.
	ErrSysrootRequired = zerr.New("sysroot path must not be empty")

	// ErrRemapReadFailed is returned when a remap table file cannot be read.
	ErrRemapReadFailed = zerr.New("failed to read remap table")

	// ErrRemapParseFailed is returned when a remap table file cannot be decoded.
	ErrRemapParseFailed = zerr.New("failed to parse remap table")

	// ErrRemapInvalid is returned when a decoded remap table fails validation.
	ErrRemapInvalid = zerr.New("invalid remap table")

	// ErrRemapFormatUnsupported is returned when a remap table file has an unknown extension.
	ErrRemapFormatUnsupported = zerr.New("unsupported remap table format, expected .yaml, .yml or .toml")
)
