package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisStore(client)
}

func TestRedisStore_GetMiss(t *testing.T) {
	_, store := setupRedis(t)

	var dest cachedExercise
	err := store.Get(context.Background(), "exercisedb:missing", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_SetGet(t *testing.T) {
	mr, store := setupRedis(t)
	ctx := context.Background()

	in := []cachedExercise{{ID: "0001", Name: "push up"}}
	require.NoError(t, store.Set(ctx, "exercisedb:list", in, time.Minute))

	var out []cachedExercise
	require.NoError(t, store.Get(ctx, "exercisedb:list", &out))
	assert.Equal(t, in, out)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, store.Get(ctx, "exercisedb:list", &out), ErrCacheMiss)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, store := setupRedis(t)
	require.NoError(t, mr.Set("exercisedb:bad", "{not json"))

	var out cachedExercise
	err := store.Get(context.Background(), "exercisedb:bad", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_Delete(t *testing.T) {
	mr, store := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", 1, 0))
	require.NoError(t, store.Set(ctx, "b", 2, 0))
	require.NoError(t, store.Delete(ctx, "a", "b"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))

	assert.NoError(t, store.Delete(ctx))
}

func TestRedisStore_DeletePrefix(t *testing.T) {
	mr, store := setupRedis(t)
	ctx := context.Background()

	for _, k := range []string{"exercisedb:1", "exercisedb:2", "exercisedb:3", "other:1"} {
		require.NoError(t, store.Set(ctx, k, k, 0))
	}

	n, err := store.DeletePrefix(ctx, "exercisedb:")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("other:1"))
	assert.False(t, mr.Exists("exercisedb:2"))
}

func TestDial(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	addr := mr.Addr()
	store, err := Dial(context.Background(), addr, "", 0)
	require.NoError(t, err)
	assert.NoError(t, store.Close())

	mr.Close()
	_, err = Dial(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
