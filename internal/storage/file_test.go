package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	value := []byte(`{"items":[{"id":"p1","qty":2}]}`)
	require.NoError(t, store.Save(ctx, "ts_cart", value))

	got, err := store.Load(ctx, "ts_cart")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestFileStore_UnsetKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "ts_orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ts_cart", []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, "ts_cart", []byte(`[2]`)))

	got, err := store.Load(ctx, "ts_cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), got)
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "ts_cart", sanitizeKey("ts_cart"))
	assert.Equal(t, "ts_cart", sanitizeKey("TS_CART"))
	assert.Equal(t, "a_b_c-1", sanitizeKey("a/b.c-1"))
}
