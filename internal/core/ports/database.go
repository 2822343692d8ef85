package ports

import "go.trai.ch/ccsysroot/internal/core/domain"

// DatabaseStore reads and writes compilation databases.
//
//go:generate go run go.uber.org/mock/mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type DatabaseStore interface {
	// Load reads compile_commands.json from the build directory.
	Load(buildDir string) (*domain.Database, error)

	// Encode serializes the database with every entry's command replaced.
	Encode(db *domain.Database) ([]byte, error)

	// Save writes the database to compile_commands.json inside dir, replacing any existing file.
	Save(dir string, db *domain.Database) (*domain.Artifact, error)
}
