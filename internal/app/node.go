package app

import (
	"context"

	"github.com/forgebsd/isoforge/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/forgebsd/isoforge/internal/adapters/journal" //nolint:depguard // Wired in app layer
	"github.com/forgebsd/isoforge/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/forgebsd/isoforge/internal/adapters/staging" //nolint:depguard // Wired in app layer
	"github.com/forgebsd/isoforge/internal/adapters/telemetry/progrock"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/forgebsd/isoforge/internal/engine/runner"
	"github.com/grindlemire/graft"
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
			config.NodeID,
			runner.NodeID,
			staging.NodeID,
			journal.NodeID,
			logger.NodeID,
			progrock.NodeID,
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

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.RecipeLoader](ctx)
	if err != nil {
		return nil, err
	}

	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[*staging.Renderer](ctx)
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

	return New(loader, run, stager, jrnl, log, telemetry), nil
}
