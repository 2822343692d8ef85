package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccsysroot/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ccsysroot/internal/adapters/compdb"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccsysroot/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccsysroot/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccsysroot/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccsysroot/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compdb.NodeID,
			cmake.CacheNodeID,
			cmake.ResolverNodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.DatabaseStore](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.CacheReader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	rules, err := graft.Dep[ports.RulesLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, cache, resolver, rules, log, tracer), nil
}
