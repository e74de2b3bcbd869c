// Package journal persists per-target run records in a flat JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/forgebsd/isoforge/internal/core/domain"
)

// Store implements ports.RunJournal using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunInfo
}

// NewStore creates a new RunJournal backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrJournalReadFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrJournalReadFailed, err)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrJournalWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrJournalWriteFailed, err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrJournalWriteFailed, err)
	}

	return nil
}

// Get retrieves the run info for a given target name.
func (s *Store) Get(targetName string) (*domain.RunInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[targetName]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the run info.
func (s *Store) Put(info domain.RunInfo) error {
	s.mu.Lock()
	s.cache[info.TargetName] = info
	s.mu.Unlock()

	return s.save()
}

// Reset discards all journaled run records, on disk and in memory.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]domain.RunInfo)

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrJournalWriteFailed, err)
	}

	return nil
}
