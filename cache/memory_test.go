package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyques41/lyfter-store/cache"
)

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	require.NoError(t, mem.Set(ctx, "product:1", []byte(`{"id":"1"}`), 0))

	exists, err := mem.Exists(ctx, "product:1")
	require.NoError(t, err)
	assert.True(t, exists)

	value, err := mem.Get(ctx, "product:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), value)
}

func TestMemoryMiss(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	exists, err := mem.Exists(ctx, "product:absent")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = mem.Get(ctx, "product:absent")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	require.NoError(t, mem.Set(ctx, "product:1", []byte("x"), 0))
	require.NoError(t, mem.Delete(ctx, "product:1"))
	// Deleting an absent key is not an error.
	require.NoError(t, mem.Delete(ctx, "product:1"))

	_, err := mem.Get(ctx, "product:1")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	require.NoError(t, mem.Set(ctx, "product:1", []byte("x"), 20*time.Millisecond))

	value, err := mem.Get(ctx, "product:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), value)

	time.Sleep(30 * time.Millisecond)

	// Past its TTL the entry is absent even though nothing invalidated it.
	exists, err := mem.Exists(ctx, "product:1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = mem.Get(ctx, "product:1")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryDeleteMatching(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	require.NoError(t, mem.Set(ctx, "product:list:20:0", []byte("a"), 0))
	require.NoError(t, mem.Set(ctx, "product:list:20:20", []byte("b"), 0))
	require.NoError(t, mem.Set(ctx, "product:1", []byte("c"), 0))

	require.NoError(t, mem.DeleteMatching(ctx, cache.PagePattern("product")))

	_, err := mem.Get(ctx, "product:list:20:0")
	assert.ErrorIs(t, err, cache.ErrMiss)
	_, err = mem.Get(ctx, "product:list:20:20")
	assert.ErrorIs(t, err, cache.ErrMiss)

	// Untouched keys survive the sweep.
	_, err = mem.Get(ctx, "product:1")
	assert.NoError(t, err)

	// A sweep with zero matches is not an error.
	require.NoError(t, mem.DeleteMatching(ctx, cache.PagePattern("order")))
}
