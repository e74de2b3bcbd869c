package ports

import (
	"time"

	"github.com/forgebsd/isoforge/internal/core/domain"
)

// ArtifactStat reports the existence and modification time of artifact
// paths. Abstracted so tests can substitute a fake filesystem view.
//
//go:generate mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactStat interface {
	// Stat returns the modification time of the artifact at path.
	// exists is false (with a zero time and nil error) when the path is
	// absent; err reports genuine stat failures only.
	Stat(path string) (mtime time.Time, exists bool, err error)
}

// ActionHasher computes a deterministic fingerprint of a target's action,
// environment and artifact path, used to re-run targets whose recipe entry
// changed between runs.
type ActionHasher interface {
	HashAction(target *domain.Target) string
}
