package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccsysroot/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the cache reader Graft node.
	CacheNodeID graft.ID = "adapter.cmake.cache"
	// ResolverNodeID is the unique identifier for the source resolver Graft node.
	ResolverNodeID graft.ID = "adapter.cmake.resolver"
)

func init() {
	graft.Register(graft.Node[ports.CacheReader]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheReader, error) {
			return NewCacheReader(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})
}
