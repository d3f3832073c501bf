package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	var got payload
	found, err := store.Get(ctx, KeyWebsiteAll, &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := payload{Name: "Shirur", Items: []string{"a", "b"}}
	require.NoError(t, store.Set(ctx, KeyWebsiteAll, want, time.Minute))

	found, err = store.Get(ctx, KeyWebsiteAll, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestMemoryStoreStoresSnapshot(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	value := payload{Items: []string{"a"}}
	require.NoError(t, store.Set(ctx, KeyWebsiteGallery, value, 0))
	value.Items[0] = "changed"

	var got payload
	_, err := store.Get(ctx, KeyWebsiteGallery, &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyWebsiteOfficials, payload{Name: "x"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var got payload
	found, err := store.Get(ctx, KeyWebsiteOfficials, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	for _, k := range WebsiteKeys {
		require.NoError(t, store.Set(ctx, k, payload{Name: k}, time.Minute))
	}
	require.NoError(t, store.Delete(ctx, WebsiteKeys...))

	for _, k := range WebsiteKeys {
		var got payload
		found, err := store.Get(ctx, k, &got)
		require.NoError(t, err)
		assert.False(t, found, k)
	}
	assert.Equal(t, "memory", store.Backend())
}

func TestMemoryStoreNoExpiration(t *testing.T) {
	store := NewMemoryStore(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyWebsiteGeneration, "gen-1", NoExpiration))
	require.NoError(t, store.Set(ctx, KeyWebsiteAll, payload{Name: "x"}, 0))
	time.Sleep(30 * time.Millisecond)

	var gen string
	found, err := store.Get(ctx, KeyWebsiteGeneration, &gen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "gen-1", gen)

	var got payload
	found, err = store.Get(ctx, KeyWebsiteAll, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
