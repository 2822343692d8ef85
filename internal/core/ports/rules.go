package ports

import "go.trai.ch/ccsysroot/internal/core/domain"

// RulesLoader provides the include path rewrite rules.
//
//go:generate go run go.uber.org/mock/mockgen -source=rules.go -destination=mocks/mock_rules.go -package=mocks
type RulesLoader interface {
	// Load reads rules from the remap file at path.
	// An empty path returns the built-in rules.
	Load(path string) (domain.RewriteRules, error)
}
