package compdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccsysroot/internal/core/ports"
)

// NodeID is the unique identifier for the compilation database store Graft node.
const NodeID graft.ID = "adapter.compdb"

func init() {
	graft.Register(graft.Node[ports.DatabaseStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatabaseStore, error) {
			return NewStore(), nil
		},
	})
}
