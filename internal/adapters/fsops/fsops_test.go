package fsops_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/forgebsd/isoforge/internal/adapters/fsops"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.iso")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	mtime, exists, err := fsops.NewStat().Stat(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, mtime.Equal(stamp))
}

func TestStat_MissingFile(t *testing.T) {
	_, exists, err := fsops.NewStat().Stat(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func newTarget(action []string, env map[string]string) *domain.Target {
	return &domain.Target{
		Name:        domain.NewInternedString("iso"),
		Action:      action,
		Artifact:    domain.NewInternedString("/w/out.iso"),
		Environment: env,
	}
}

func TestHashAction_Deterministic(t *testing.T) {
	hasher := fsops.NewHasher()

	a := hasher.HashAction(newTarget([]string{"make", "iso"}, map[string]string{"A": "1", "B": "2"}))
	b := hasher.HashAction(newTarget([]string{"make", "iso"}, map[string]string{"B": "2", "A": "1"}))

	// Map iteration order must not leak into the hash.
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestHashAction_ChangesWithAction(t *testing.T) {
	hasher := fsops.NewHasher()

	a := hasher.HashAction(newTarget([]string{"make", "iso"}, nil))
	b := hasher.HashAction(newTarget([]string{"make", "release"}, nil))
	assert.NotEqual(t, a, b)
}

func TestHashAction_ArgumentBoundaries(t *testing.T) {
	hasher := fsops.NewHasher()

	// ["ab", "c"] and ["a", "bc"] must not collide.
	a := hasher.HashAction(newTarget([]string{"ab", "c"}, nil))
	b := hasher.HashAction(newTarget([]string{"a", "bc"}, nil))
	assert.NotEqual(t, a, b)
}

func TestHashAction_ChangesWithEnvironment(t *testing.T) {
	hasher := fsops.NewHasher()

	a := hasher.HashAction(newTarget([]string{"make"}, map[string]string{"FLAVOR": "router"}))
	b := hasher.HashAction(newTarget([]string{"make"}, map[string]string{"FLAVOR": "firewall"}))
	assert.NotEqual(t, a, b)
}
