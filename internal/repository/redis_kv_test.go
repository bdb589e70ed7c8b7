package repository

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisStore connects to CURSADA_TEST_REDIS_ADDR, using DB 15 and
// flushing it around the test. Tests skip when the variable is unset.
func newTestRedisStore(t *testing.T) *RedisKVStore {
	t.Helper()
	addr := os.Getenv("CURSADA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CURSADA_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return NewRedisKVStore(client)
}

func TestRedisKVRepo_RoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	kv := store.KV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "selection:2025-2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "selection:2025-2", `["a"]`))
	got, err := kv.Get(ctx, "selection:2025-2")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, got)

	require.NoError(t, kv.Delete(ctx, "selection:2025-2"))
	_, err = kv.Get(ctx, "selection:2025-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKVRepo_ListByPrefix(t *testing.T) {
	store := newTestRedisStore(t)
	kv := store.KV()
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "selection:2025-2", `["b"]`))
	require.NoError(t, kv.Put(ctx, "selection:2025-1", `["a"]`))
	require.NoError(t, kv.Put(ctx, "grayzones:2025-2", `[]`))

	entries, err := kv.List(ctx, "selection:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "selection:2025-1", entries[0].Key)
	assert.Equal(t, `["b"]`, entries[1].Value)
}

func TestRedisKVStore_AtomicDiscardsOnError(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	err := store.Atomic(ctx, func(ctx context.Context, kv KVRepo) error {
		if err := kv.Put(ctx, "selection:2025-2", `["a"]`); err != nil {
			return err
		}
		_, err := kv.Get(ctx, "selection:2025-2")
		return err
	})
	require.ErrorIs(t, err, errReadInBatch)

	_, err = store.KV().Get(ctx, "selection:2025-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGlobPrefix_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `cursada:selection:\*\?\[x\]*`, globPrefix("cursada:selection:*?[x]"))
}

func TestLikePrefix_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `a\_b\%%`, likePrefix("a_b%"))
}
