package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records per-target progress for rendering.
type Telemetry interface {
	// Record starts recording a vertex for the named target.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one target's slot in the progress display.
type Vertex interface {
	// Stdout returns a writer capturing the action's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the action's error output.
	Stderr() io.Writer
	// Cached marks the target as skipped because its artifact was fresh.
	Cached()
	// Complete marks the target as finished, successfully or with an error.
	Complete(err error)
}
