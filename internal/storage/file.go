package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per key inside a state directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir failed: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s failed: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write %s failed: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

// sanitizeKey keeps file names flat: anything outside [a-z0-9_-] becomes '_'.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.ToLower(key))
}
