package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "github.com/couchcryptid/campus-data-sync/internal/adapter/redis"
	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

func newTestStore(t *testing.T) *redisadapter.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisadapter.NewStoreWithClient(client)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	col := store.Collection(domain.CollectionEvents)

	in := domain.Event{Key: "42", Title: "Convocation", StartTime: 1000, EndTime: 2000}
	require.NoError(t, col.Set(ctx, in.Key, in))

	var out domain.Event
	require.NoError(t, col.Get(ctx, "42", &out))
	assert.Equal(t, in, out)
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var out domain.Event
	err := store.Collection(domain.CollectionEvents).Get(ctx, "nope", &out)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_KeysScopedToCollection(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	events := store.Collection(domain.CollectionEvents)
	resources := store.Collection(domain.CollectionResources)

	require.NoError(t, events.Set(ctx, "1", domain.Event{Key: "1"}))
	require.NoError(t, events.Set(ctx, "2", domain.Event{Key: "2"}))
	require.NoError(t, resources.Set(ctx, domain.DocCategoryColors, domain.ColorTable{"Default": "#888888"}))

	keys, err := events.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, keys)

	keys, err = resources.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DocCategoryColors}, keys)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	col := store.Collection(domain.CollectionEvents)

	require.NoError(t, col.Set(ctx, "1", domain.Event{Key: "1"}))
	require.NoError(t, col.Delete(ctx, "1"))

	var out domain.Event
	require.ErrorIs(t, col.Get(ctx, "1", &out), domain.ErrNotFound)

	// Deleting a missing key is a no-op, matching upsert semantics.
	require.NoError(t, col.Delete(ctx, "1"))
}

func TestStore_SetReplaces(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	col := store.Collection(domain.CollectionEvents)

	require.NoError(t, col.Set(ctx, "1", domain.Event{Key: "1", Title: "old"}))
	require.NoError(t, col.Set(ctx, "1", domain.Event{Key: "1", Title: "new"}))

	var out domain.Event
	require.NoError(t, col.Get(ctx, "1", &out))
	assert.Equal(t, "new", out.Title)
}
