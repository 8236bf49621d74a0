// file: internals/features/system/settings/store.go
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Store is a flat JSON document persisted to one file. Reads and writes are
// serialized behind a mutex; writes go through a temp file + rename so a
// crash never leaves a half-written document.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the current document; a missing file reads as an empty map.
func (s *Store) Load() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (map[string]any, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	out := map[string]any{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Merge shallow-merges patch into the stored document and persists the
// result, returning the merged document.
func (s *Store) Merge(patch map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		if v == nil {
			delete(current, k)
			continue
		}
		current[k] = v
	}

	raw, err := sonic.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return nil, err
	}
	return current, nil
}
