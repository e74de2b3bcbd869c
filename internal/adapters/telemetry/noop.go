// Package telemetry provides telemetry implementations that do not render.
package telemetry

import (
	"context"
	"io"

	"github.com/forgebsd/isoforge/internal/core/ports"
)

// NoOp is a ports.Telemetry implementation that records nothing. It backs
// quiet runs and tests that do not care about progress output.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (v *noOpVertex) Stdout() io.Writer  { return io.Discard }
func (v *noOpVertex) Stderr() io.Writer  { return io.Discard }
func (v *noOpVertex) Cached()            {}
func (v *noOpVertex) Complete(err error) {}
