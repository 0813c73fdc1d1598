// Package journal persists per-target build records in a flat JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where the journal lives relative to the working directory.
const DefaultPath = ".mason/journal.json"

var _ ports.JournalStore = (*Store)(nil)

// Store implements ports.JournalStore using a flat JSON file, loaded once
// at construction and rewritten on every Put.
type Store struct {
	path string

	mu    sync.RWMutex
	cache map[string]domain.Record
}

// NewStore creates a Store backed by the file at path. A missing file is an
// empty journal.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Record),
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
		return zerr.Wrap(err, "failed to read journal")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal journal")
	}
	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal journal")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create journal directory")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write journal")
	}
	return nil
}

// Get retrieves the last record for a target.
func (s *Store) Get(target string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record, replacing any previous one for the target.
func (s *Store) Put(rec domain.Record) error {
	s.mu.Lock()
	s.cache[rec.Target] = rec
	s.mu.Unlock()

	return s.save()
}
