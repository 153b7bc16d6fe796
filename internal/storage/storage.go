package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store for serialized session state. Implementations
// must treat keys independently, there is no transaction across keys.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
