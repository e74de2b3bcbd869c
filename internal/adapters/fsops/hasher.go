package fsops

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
)

var _ ports.ActionHasher = (*Hasher)(nil)

// Hasher computes a stable fingerprint of a target's definition.
type Hasher struct{}

// NewHasher creates a new action hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashAction computes a single hash representing the target's action,
// artifact, working directory, and environment. It deliberately excludes
// prerequisites: rewiring the graph is caught by the mtime comparison, not
// by invalidating every journal entry downstream.
func (h *Hasher) HashAction(target *domain.Target) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(target.Name.String())
	_, _ = hasher.Write([]byte{0})

	for _, arg := range target.Action {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	_, _ = hasher.WriteString(target.Artifact.String())
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(target.WorkingDir.String())
	_, _ = hasher.Write([]byte{0})

	hashEnvironment(target.Environment, hasher)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashEnvironment hashes environment variables in a deterministic order.
func hashEnvironment(env map[string]string, hasher *xxhash.Digest) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
