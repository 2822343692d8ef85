package domain

import (
	"maps"
	"slices"
)

// DefaultKeepPrefix is the local development tree whose include paths are never rewritten.
const DefaultKeepPrefix = "/home/dss/dev"

// Replacement is one include directory a /usr/local library expands to.
// The zero value means "the original path, under the sysroot".
type Replacement struct {
	Path string
}

// UnderSysroot returns a replacement that keeps the original path and prefixes it with the sysroot.
func UnderSysroot() Replacement {
	return Replacement{}
}

// Literal returns a replacement that points at path as is.
func Literal(path string) Replacement {
	return Replacement{Path: path}
}

// IsUnderSysroot reports whether r stands for the sysroot-prefixed original path.
func (r Replacement) IsUnderSysroot() bool {
	return r.Path == ""
}

// RemapTable maps a library name to the include directories that replace its /usr/local path.
// A RemapTable is immutable once built.
type RemapTable struct {
	entries map[string][]Replacement
}

// NewRemapTable builds a table from entries. The input is copied.
func NewRemapTable(entries map[string][]Replacement) RemapTable {
	copied := make(map[string][]Replacement, len(entries))
	for name, repl := range entries {
		copied[name] = slices.Clone(repl)
	}
	return RemapTable{entries: copied}
}

// Lookup returns the replacements registered for name.
func (t RemapTable) Lookup(name string) ([]Replacement, bool) {
	repl, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(repl), true
}

// Len returns the number of libraries in the table.
func (t RemapTable) Len() int {
	return len(t.entries)
}

// Names returns the library names in sorted order.
func (t RemapTable) Names() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// RewriteRules is the configuration of the include path rewriter.
type RewriteRules struct {
	// Table resolves /usr/local/<library> include paths.
	Table RemapTable

	// Keep lists path prefixes whose include flags are passed through untouched.
	Keep []string
}

// WithKeep returns a copy of r whose keep list is replaced by keep.
// An empty keep leaves r unchanged.
func (r RewriteRules) WithKeep(keep []string) RewriteRules {
	if len(keep) == 0 {
		return r
	}
	r.Keep = slices.Clone(keep)
	return r
}

// DefaultRewriteRules returns the built-in remap table and keep list.
func DefaultRewriteRules() RewriteRules {
	return RewriteRules{
		Table: NewRemapTable(map[string][]Replacement{
			"include": {UnderSysroot()},
			"lib":     {UnderSysroot()},
			"share":   {UnderSysroot()},
			"boost":   {UnderSysroot()},
			"eigen3":  {Literal("/usr/include/eigen3")},
			"opencv":  {Literal("/usr/include/opencv4")},
			"qt5": {
				Literal("/usr/include/x86_64-linux-gnu/qt5"),
				Literal("/usr/include/x86_64-linux-gnu/qt5/QtCore"),
			},
			"protobuf": {UnderSysroot(), Literal("/usr/include/google/protobuf")},
		}),
		Keep: []string{DefaultKeepPrefix},
	}
}
