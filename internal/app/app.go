// Package app implements the application layer for ccsysroot.
package app

import (
	"context"
	"path/filepath"
	"strconv"

	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports"
	"go.trai.ch/ccsysroot/internal/engine/rewriter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store    ports.DatabaseStore
	cache    ports.CacheReader
	resolver ports.SourceResolver
	rules    ports.RulesLoader
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	store ports.DatabaseStore,
	cache ports.CacheReader,
	resolver ports.SourceResolver,
	rules ports.RulesLoader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		store:    store,
		cache:    cache,
		resolver: resolver,
		rules:    rules,
		logger:   log,
		tracer:   tracer,
	}
}

// FixOptions configures a single Fix run.
type FixOptions struct {
	// BuildDir holds compile_commands.json and CMakeCache.txt.
	BuildDir string
	// Sysroot is the root the include paths are moved into.
	Sysroot string
	// RemapFile replaces the built-in remap table when set.
	RemapFile string
	// Keep replaces the keep prefixes when non-empty.
	Keep []string
	// DryRun encodes the result without writing it.
	DryRun bool
}

// FixResult describes the outcome of a Fix run.
type FixResult struct {
	// SourceDir is the CMake source directory the database belongs in.
	SourceDir string
	// Entries is the number of rewritten translation units.
	Entries int
	// Artifact is the written file. It is nil for a dry run.
	Artifact *domain.Artifact
	// Output is the encoded database of a dry run.
	Output []byte
}

// Fix rewrites the compilation database of opts.BuildDir for opts.Sysroot and
// writes it into the CMake source directory.
//
// The stages run in order and the first failure aborts the run. Nothing is written
// unless every earlier stage succeeded.
func (a *App) Fix(ctx context.Context, opts FixOptions) (*FixResult, error) {
	if opts.Sysroot == "" {
		return nil, domain.ErrSysrootRequired
	}
	sysroot := filepath.Clean(opts.Sysroot)

	ctx, span := a.tracer.Start(ctx, "fix")
	defer span.End()
	span.SetAttribute("build_dir", opts.BuildDir)
	span.SetAttribute("sysroot", sysroot)
	span.SetAttribute("dry_run", opts.DryRun)

	result, err := a.fix(ctx, opts, sysroot)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}

func (a *App) fix(ctx context.Context, opts FixOptions, sysroot string) (*FixResult, error) {
	// 1. Load the compilation database
	db, err := stage(ctx, a.tracer, "load database", func(span ports.Span) (*domain.Database, error) {
		db, err := a.store.Load(opts.BuildDir)
		if err == nil {
			span.SetAttribute("entries", db.Len())
		}
		return db, err
	})
	if err != nil {
		return nil, err
	}

	// 2. Load the CMake cache
	lines, err := stage(ctx, a.tracer, "load cache", func(span ports.Span) ([]string, error) {
		lines, err := a.cache.Lines(opts.BuildDir)
		if err == nil {
			span.SetAttribute("lines", len(lines))
		}
		return lines, err
	})
	if err != nil {
		return nil, err
	}

	// 3. Rewrite every command
	_, err = stage(ctx, a.tracer, "rewrite", func(span ports.Span) (struct{}, error) {
		rules, err := a.rules.Load(opts.RemapFile)
		if err != nil {
			return struct{}{}, err
		}
		rules = rules.WithKeep(opts.Keep)
		span.SetAttribute("libraries", rules.Table.Len())
		span.SetAttribute("keep", rules.Keep)

		return struct{}{}, rewriter.New(rules).FixAll(db, sysroot)
	})
	if err != nil {
		return nil, err
	}

	// 4. Resolve the source directory
	sourceDir, err := stage(ctx, a.tracer, "resolve source", func(span ports.Span) (string, error) {
		dir, err := a.resolver.Resolve(lines)
		if err == nil {
			span.SetAttribute("source_dir", dir)
		}
		return dir, err
	})
	if err != nil {
		return nil, err
	}

	result := &FixResult{SourceDir: sourceDir, Entries: db.Len()}

	// 5. Write the result
	if opts.DryRun {
		result.Output, err = stage(ctx, a.tracer, "encode", func(span ports.Span) ([]byte, error) {
			data, err := a.store.Encode(db)
			if err == nil {
				span.SetAttribute("bytes", len(data))
			}
			return data, err
		})
		if err != nil {
			return nil, err
		}
		a.logger.Debug("dry run, not writing " + domain.DatabasePath(sourceDir))
		return result, nil
	}

	result.Artifact, err = stage(ctx, a.tracer, "write", func(span ports.Span) (*domain.Artifact, error) {
		artifact, err := a.store.Save(sourceDir, db)
		if err == nil {
			span.SetAttribute("path", artifact.Path)
			span.SetAttribute("bytes", artifact.Size)
		}
		return artifact, err
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("wrote " + strconv.Itoa(result.Entries) + " entries to " + result.Artifact.Path +
		" (xxh64 " + result.Artifact.DigestHex() + ")")

	return result, nil
}

// stage runs fn inside a span named name, recording its error.
func stage[T any](ctx context.Context, tracer ports.Tracer, name string, fn func(ports.Span) (T, error)) (T, error) {
	_, span := tracer.Start(ctx, name)
	defer span.End()

	v, err := fn(span)
	if err != nil {
		span.RecordError(err)
		return v, zerr.With(err, "stage", name)
	}
	return v, nil
}
