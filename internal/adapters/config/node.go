package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccsysroot/internal/adapters/logger"
	"go.trai.ch/ccsysroot/internal/core/ports"
)

// NodeID is the unique identifier for the rules loader Graft node.
const NodeID graft.ID = "adapter.rules_loader"

func init() {
	graft.Register(graft.Node[ports.RulesLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RulesLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
