package statestore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	ViewMode string   `json:"viewMode"`
	EventIDs []string `json:"eventIds"`
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := snapshot{ViewMode: "timeGridWeek", EventIDs: []string{"e1", "e2"}}
	require.NoError(t, store.Save(ctx, "prefs", in))

	var out snapshot
	require.NoError(t, store.Load(ctx, "prefs", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore()

	var out snapshot
	err := store.Load(context.Background(), "ghost", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_OverwriteKeepsLatest(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "prefs", snapshot{ViewMode: "dayGridMonth"}))
	require.NoError(t, store.Save(ctx, "prefs", snapshot{ViewMode: "listWeek"}))

	var out snapshot
	require.NoError(t, store.Load(ctx, "prefs", &out))
	assert.Equal(t, "listWeek", out.ViewMode)
}

func newRedisStore(t *testing.T, namespace string) *RedisStore {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, namespace)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisStore(t, "bookly")
	ctx := context.Background()

	in := snapshot{ViewMode: "timeGridWeek", EventIDs: []string{"e1"}}
	require.NoError(t, store.Save(ctx, "events", in))

	var out snapshot
	require.NoError(t, store.Load(ctx, "events", &out))
	assert.Equal(t, in, out)
}

func TestRedisStore_MissingKey(t *testing.T) {
	store := newRedisStore(t, "bookly")

	var out snapshot
	err := store.Load(context.Background(), "ghost", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_NamespaceIsolation(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	first := NewRedisStore(client, "tenant-a")
	second := NewRedisStore(client, "tenant-b")
	ctx := context.Background()

	require.NoError(t, first.Save(ctx, "prefs", snapshot{ViewMode: "timeGridWeek"}))

	var out snapshot
	assert.ErrorIs(t, second.Load(ctx, "prefs", &out), ErrNotFound)
	require.NoError(t, first.Load(ctx, "prefs", &out))
	assert.Equal(t, "timeGridWeek", out.ViewMode)
}
