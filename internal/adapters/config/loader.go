// Package config loads include path rewrite rules for ccsysroot.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RulesLoader = (*Loader)(nil)

// Loader implements ports.RulesLoader using YAML or TOML remap files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the remap file at path and returns the rules it describes.
// An empty path returns domain.DefaultRewriteRules. A file without a keep
// list inherits the default one.
func (l *Loader) Load(path string) (domain.RewriteRules, error) {
	if path == "" {
		return domain.DefaultRewriteRules(), nil
	}

	var remapfile Remapfile
	if err := decodeFile(path, &remapfile); err != nil {
		return domain.RewriteRules{}, zerr.With(err, "path", path)
	}

	if err := l.validate.Struct(&remapfile); err != nil {
		return domain.RewriteRules{}, zerr.With(zerr.Wrap(err, domain.ErrRemapInvalid.Error()), "path", path)
	}

	entries := make(map[string][]domain.Replacement, len(remapfile.Libraries))
	for name, paths := range remapfile.Libraries {
		repl := make([]domain.Replacement, 0, len(paths))
		for _, p := range paths {
			if p == nil || *p == "" {
				repl = append(repl, domain.UnderSysroot())
				continue
			}
			repl = append(repl, domain.Literal(*p))
		}
		entries[name] = repl
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded remap table " + path)
	}

	rules := domain.RewriteRules{
		Table: domain.NewRemapTable(entries),
		Keep:  []string{domain.DefaultKeepPrefix},
	}
	return rules.WithKeep(remapfile.Keep), nil
}

func decodeFile(path string, target *Remapfile) error {
	//nolint:gosec // Path is given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRemapReadFailed.Error())
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return zerr.Wrap(err, domain.ErrRemapParseFailed.Error())
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target); err != nil {
			return zerr.Wrap(err, domain.ErrRemapParseFailed.Error())
		}
	default:
		return zerr.With(domain.ErrRemapFormatUnsupported, "extension", filepath.Ext(path))
	}

	return nil
}
