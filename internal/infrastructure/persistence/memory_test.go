package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "snapshot-value"))

	got, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "snapshot-value", got)

	require.NoError(t, store.Clear(ctx))

	_, found, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))

	got, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)
}
