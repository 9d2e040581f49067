package storage

import (
	"context"
	"testing"
	"time"

	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, store.Delete(ctx, "k"))

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "absent")
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original, 0))
	original[0] = 'x'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}
