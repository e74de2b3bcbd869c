package ports

import "github.com/forgebsd/isoforge/internal/core/domain"

// RunJournal defines the interface for persisting per-target run records
// between invocations.
//
//go:generate mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type RunJournal interface {
	// Get retrieves the run info for a given target name.
	// Returns nil, nil if not found.
	Get(targetName string) (*domain.RunInfo, error)

	// Put stores the run info.
	Put(info domain.RunInfo) error

	// Reset discards all journaled run records.
	Reset() error
}
