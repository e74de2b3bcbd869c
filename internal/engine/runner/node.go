package runner

import (
	"context"

	"github.com/forgebsd/isoforge/internal/adapters/fsops"   //nolint:depguard // Wired in engine wiring
	"github.com/forgebsd/isoforge/internal/adapters/journal" //nolint:depguard // Wired in engine wiring
	"github.com/forgebsd/isoforge/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"github.com/forgebsd/isoforge/internal/adapters/shell"   //nolint:depguard // Wired in engine wiring
	"github.com/forgebsd/isoforge/internal/adapters/telemetry/progrock"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fsops.StatNodeID,
			fsops.HasherNodeID,
			journal.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			stat, err := graft.Dep[ports.ArtifactStat](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.ActionHasher](ctx)
			if err != nil {
				return nil, err
			}

			jrnl, err := graft.Dep[ports.RunJournal](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(executor, stat, hasher, jrnl, log, telemetry), nil
		},
	})
}
