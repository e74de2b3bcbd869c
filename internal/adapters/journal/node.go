package journal

import (
	"context"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the run journal node.
const NodeID graft.ID = "adapter.run_journal"

func init() {
	graft.Register(graft.Node[ports.RunJournal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RunJournal, error) {
			store, err := NewStore(domain.DefaultJournalPath("."))
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
