// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/forgebsd/isoforge/internal/adapters/config"
	_ "github.com/forgebsd/isoforge/internal/adapters/fsops"
	_ "github.com/forgebsd/isoforge/internal/adapters/journal"
	_ "github.com/forgebsd/isoforge/internal/adapters/logger"
	_ "github.com/forgebsd/isoforge/internal/adapters/shell"
	_ "github.com/forgebsd/isoforge/internal/adapters/staging"
	_ "github.com/forgebsd/isoforge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/forgebsd/isoforge/internal/app"
	_ "github.com/forgebsd/isoforge/internal/engine/runner"
)
