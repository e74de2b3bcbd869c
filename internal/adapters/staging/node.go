package staging

import (
	"context"

	"github.com/forgebsd/isoforge/internal/adapters/logger"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the staging renderer node.
const NodeID graft.ID = "adapter.staging"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Renderer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(log), nil
		},
	})
}
