package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// storageKey matches the slot name the storefront has always used for
// the active cart.
const storageKey = "cartTechnicalId"

// FileStore keeps the cart id in a small JSON file. Writes are
// synchronous so the file never diverges from what callers were told.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNoCartID
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	var slot map[string]string
	if e2 := json.Unmarshal(data, &slot); e2 != nil {
		return "", fmt.Errorf("parse session file: %w", e2)
	}

	id := slot[storageKey]
	if id == "" {
		return "", ErrNoCartID
	}
	return id, nil
}

func (s *FileStore) Set(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]string{storageKey: id})
	if err != nil {
		return fmt.Errorf("marshal session slot: %w", err)
	}

	if e2 := os.MkdirAll(filepath.Dir(s.path), 0o755); e2 != nil {
		return fmt.Errorf("create session dir: %w", e2)
	}
	if e3 := os.WriteFile(s.path, data, 0o600); e3 != nil {
		return fmt.Errorf("write session file: %w", e3)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
