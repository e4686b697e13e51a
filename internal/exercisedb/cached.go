package exercisedb

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"golang.org/x/sync/singleflight"
)

// KeyPrefix namespaces every key the CachedClient writes.
const KeyPrefix = "exercisedb:"

// Store is the cache the CachedClient reads through.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedClient serves ExerciseDB reads from a Store, falling back to the
// wrapped API on a miss. Identical concurrent misses share one request,
// which keeps running when the caller that started it gives up.
type CachedClient struct {
	api   API
	store Store
	ttl   time.Duration
	group singleflight.Group
}

var _ API = (*CachedClient)(nil)

// NewCachedClient wraps api with store. Entries live for ttl.
func NewCachedClient(api API, store Store, ttl time.Duration) *CachedClient {
	return &CachedClient{api: api, store: store, ttl: ttl}
}

// through implements cache-aside for one key. Cache failures are logged and
// never surface to the caller.
func through[T any](ctx context.Context, c *CachedClient, key string, fetch func(context.Context) (T, error)) (T, error) {
	key = KeyPrefix + key

	var cached T
	err := c.store.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("Failed to read cache %s: %v", key, err)
	}

	// Detached so a cancelled caller does not fail the callers that joined it.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		fresh, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(shared, key, fresh, c.ttl); err != nil {
			log.Printf("Failed to write cache %s: %v", key, err)
		}
		return fresh, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (c *CachedClient) Exercises(ctx context.Context) ([]catalog.Exercise, error) {
	return through(ctx, c, "all", c.api.Exercises)
}

func (c *CachedClient) ExercisesByBodyPart(ctx context.Context, bodyPart string) ([]catalog.Exercise, error) {
	if catalog.IsWildcard(bodyPart) {
		return c.Exercises(ctx)
	}
	return through(ctx, c, "bodyPart:"+bodyPart, func(ctx context.Context) ([]catalog.Exercise, error) {
		return c.api.ExercisesByBodyPart(ctx, bodyPart)
	})
}

func (c *CachedClient) BodyPartList(ctx context.Context) ([]string, error) {
	return through(ctx, c, "bodyPartList", c.api.BodyPartList)
}

func (c *CachedClient) Exercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	return through(ctx, c, "exercise:"+id, func(ctx context.Context) (*catalog.Exercise, error) {
		return c.api.Exercise(ctx, id)
	})
}

func (c *CachedClient) ExercisesByTarget(ctx context.Context, target string) ([]catalog.Exercise, error) {
	return through(ctx, c, "target:"+target, func(ctx context.Context) ([]catalog.Exercise, error) {
		return c.api.ExercisesByTarget(ctx, target)
	})
}

func (c *CachedClient) ExercisesByEquipment(ctx context.Context, equipment string) ([]catalog.Exercise, error) {
	return through(ctx, c, "equipment:"+equipment, func(ctx context.Context) ([]catalog.Exercise, error) {
		return c.api.ExercisesByEquipment(ctx, equipment)
	})
}
