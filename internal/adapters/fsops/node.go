package fsops

import (
	"context"

	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// StatNodeID is the unique identifier for the artifact stat node.
	StatNodeID graft.ID = "adapter.fsops.stat"
	// HasherNodeID is the unique identifier for the action hasher node.
	HasherNodeID graft.ID = "adapter.fsops.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactStat]{
		ID:        StatNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactStat, error) {
			return NewStat(), nil
		},
	})

	graft.Register(graft.Node[ports.ActionHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ActionHasher, error) {
			return NewHasher(), nil
		},
	})
}
