package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	mu     sync.Mutex
	values map[string][]byte
	loads  int
}

func newCountingStore() *countingStore {
	return &countingStore{values: make(map[string][]byte)}
}

func (s *countingStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *countingStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *countingStore) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func TestCachedStore_LoadsInnerOnce(t *testing.T) {
	inner := newCountingStore()
	inner.values["ts_cart"] = []byte(`[1]`)
	store := NewCachedStore(inner)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		got, err := store.Load(ctx, "ts_cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), got)
	}

	assert.Equal(t, 1, inner.loadCount())
}

func TestCachedStore_SaveRefreshesCache(t *testing.T) {
	inner := newCountingStore()
	store := NewCachedStore(inner)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ts_cart", []byte(`[1]`)))

	got, err := store.Load(ctx, "ts_cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), got)

	// served from cache, inner never read
	assert.Zero(t, inner.loadCount())

	// inner store received the write
	assert.Equal(t, []byte(`[1]`), inner.values["ts_cart"])
}

func TestCachedStore_NotFoundPassesThrough(t *testing.T) {
	store := NewCachedStore(newCountingStore())

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedStore_ReturnsCopies(t *testing.T) {
	inner := newCountingStore()
	store := NewCachedStore(inner)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte(`abc`)))

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
