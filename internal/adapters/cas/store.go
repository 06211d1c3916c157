// Package cas implements the build-info store backed by a flat JSON file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file. The
// whole file is held in memory; every Put rewrites it.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.StepInfo
}

// NewStore creates a build-info store backed by the file at the given
// path, loading any existing contents.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.StepInfo),
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
		return zerr.Wrap(err, "failed to read build info store")
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build info store")
	}
	return nil
}

// save persists the cache to disk. The caller must hold mu so the
// marshal and the file write form one atomic snapshot; a concurrent
// Put could otherwise land an older snapshot last.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build info store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build info store")
	}
	return nil
}

// Get retrieves the build info recorded under key. Returns nil, nil
// when absent.
func (s *Store) Get(key string) (*domain.StepInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores info under key and persists the store.
func (s *Store) Put(key string, info domain.StepInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = info
	return s.save()
}

// Clear drops all recorded build info and removes the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]domain.StepInfo)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove build info store")
	}
	return nil
}
