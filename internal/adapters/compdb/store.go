// Package compdb reads and writes JSON compilation databases.
package compdb

import (
	"bytes"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseStore = (*Store)(nil)

// Store implements ports.DatabaseStore on top of compile_commands.json files.
// Records are kept as raw JSON so keys other than "command" round-trip untouched.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses compile_commands.json from buildDir.
func (s *Store) Load(buildDir string) (*domain.Database, error) {
	path := domain.DatabasePath(buildDir)

	//nolint:gosec // Path is built from the build directory given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", path)
	}

	db, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return db, nil
}

func parse(data []byte) (*domain.Database, error) {
	if !gjson.ValidBytes(data) {
		return nil, zerr.With(domain.ErrDatabaseParseFailed, "reason", "invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, zerr.With(domain.ErrDatabaseParseFailed, "reason", "top-level value is not an array")
	}

	db := &domain.Database{}
	var parseErr error
	root.ForEach(func(_, value gjson.Result) bool {
		index := len(db.Entries)
		if !value.IsObject() {
			parseErr = zerr.With(
				zerr.With(domain.ErrDatabaseParseFailed, "reason", "entry is not an object"),
				"entry", index,
			)
			return false
		}

		command := value.Get("command")
		if command.Type != gjson.String {
			parseErr = zerr.With(domain.ErrEntryMissingCommand, "entry", index)
			return false
		}

		db.Entries = append(db.Entries, domain.Entry{
			Command:   command.String(),
			Directory: value.Get("directory").String(),
			File:      value.Get("file").String(),
			Output:    value.Get("output").String(),
			Raw:       []byte(value.Raw),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return db, nil
}

// Encode serializes db as an indented JSON array.
func (s *Store) Encode(db *domain.Database) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, entry := range db.Entries {
		record, err := encodeEntry(entry)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseEncodeFailed.Error()), "entry", i)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(record)
	}
	buf.WriteByte(']')

	return pretty.Pretty(buf.Bytes()), nil
}

func encodeEntry(entry domain.Entry) ([]byte, error) {
	record := entry.Raw
	if len(record) == 0 {
		// Entries built in memory have no original record to patch.
		var err error
		record, err = sjson.SetBytes([]byte(`{}`), "directory", entry.Directory)
		if err != nil {
			return nil, err
		}
		if record, err = sjson.SetBytes(record, "file", entry.File); err != nil {
			return nil, err
		}
		if entry.Output != "" {
			if record, err = sjson.SetBytes(record, "output", entry.Output); err != nil {
				return nil, err
			}
		}
	}
	return sjson.SetBytes(record, "command", entry.Command)
}

// Save writes db to compile_commands.json in dir, replacing any existing file.
func (s *Store) Save(dir string, db *domain.Database) (*domain.Artifact, error) {
	data, err := s.Encode(db)
	if err != nil {
		return nil, err
	}

	path := domain.DatabasePath(dir)

	//nolint:gosec // Destination is the resolved CMake source directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}

	return &domain.Artifact{
		Path:   path,
		Size:   len(data),
		Digest: xxhash.Sum64(data),
	}, nil
}
