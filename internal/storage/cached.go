package storage

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedStore is a read-through wrapper around another Store. Each key is
// loaded from the inner store at most once per process; saves go through to
// the inner store and refresh the cached copy. Singleflight collapses
// concurrent first loads of the same key.
type CachedStore struct {
	inner Store

	mu     sync.RWMutex
	values map[string][]byte
	sfg    singleflight.Group
}

func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{
		inner:  inner,
		values: make(map[string][]byte),
	}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	cached, ok := s.values[key]
	s.mu.RUnlock()
	if ok {
		return clone(cached), nil
	}

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		data, err := s.inner.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.values[key] = clone(data)
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]byte)), nil
}

func (s *CachedStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.inner.Save(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = clone(value)
	s.mu.Unlock()
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
