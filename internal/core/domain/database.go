package domain

import "fmt"

// Entry is one translation unit record of a compilation database.
type Entry struct {
	// Command is the full compiler invocation as a single string.
	Command string

	// Directory, File and Output mirror the record's fields of the same name.
	// They are informational; the record is written back from Raw.
	Directory string
	File      string
	Output    string

	// Raw is the record's original JSON object. Every key except "command"
	// is written back from here unchanged.
	Raw []byte
}

// Database is an ordered compilation database.
type Database struct {
	Entries []Entry
}

// Len returns the number of translation units in the database.
func (d *Database) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// Artifact describes a file written by the tool.
type Artifact struct {
	Path   string
	Size   int
	Digest uint64
}

// DigestHex renders the xxhash64 digest of the artifact's content.
func (a Artifact) DigestHex() string {
	return fmt.Sprintf("%016x", a.Digest)
}
