package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/forgebsd/isoforge/internal/adapters/journal"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*journal.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), domain.JournalFileName)
	store, err := journal.NewStore(path)
	require.NoError(t, err)
	return store, path
}

func TestStore_PutAndGet(t *testing.T) {
	store, _ := newStore(t)

	info := domain.RunInfo{
		TargetName: "base-iso",
		ActionHash: "00aabbccddeeff11",
		Timestamp:  time.Now(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("base-iso")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.TargetName, got.TargetName)
	assert.Equal(t, info.ActionHash, got.ActionHash)
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.Get("never-ran")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	store, path := newStore(t)

	mtime := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(domain.RunInfo{
		TargetName:    "packages",
		ActionHash:    "1122334455667788",
		ArtifactMtime: mtime,
		Timestamp:     time.Now(),
	}))

	// A second store on the same file sees the journaled entry.
	reopened, err := journal.NewStore(path)
	require.NoError(t, err)

	got, err := reopened.Get("packages")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1122334455667788", got.ActionHash)
	assert.True(t, mtime.Equal(got.ArtifactMtime))
}

func TestStore_Reset(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, store.Put(domain.RunInfo{TargetName: "iso"}))
	require.NoError(t, store.Reset())

	got, err := store.Get("iso")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Resetting an already-empty journal is not an error.
	require.NoError(t, store.Reset())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.JournalFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.NewStore(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrJournalReadFailed)
}
