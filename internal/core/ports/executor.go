// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/forgebsd/isoforge/internal/core/domain"
)

// Executor defines the interface for running a target's external action.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the target's action command and waits for it to
	// complete, streaming the process output to stdout and stderr.
	// An empty action is a no-op. A non-zero exit is returned as an error
	// carrying the exit code; the caller decides whether the failure is
	// fatal or tolerated.
	Execute(ctx context.Context, target *domain.Target, stdout, stderr io.Writer) error
}
