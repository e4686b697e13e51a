package exercisedb

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAPI is an in-memory API that counts upstream calls.
type countingAPI struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (a *countingAPI) hit() error {
	a.calls.Add(1)
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	return a.err
}

func (a *countingAPI) Exercises(ctx context.Context) ([]catalog.Exercise, error) {
	if err := a.hit(); err != nil {
		return nil, err
	}
	return []catalog.Exercise{pushUp}, nil
}

func (a *countingAPI) ExercisesByBodyPart(ctx context.Context, part string) ([]catalog.Exercise, error) {
	if err := a.hit(); err != nil {
		return nil, err
	}
	return []catalog.Exercise{pushUp}, nil
}

func (a *countingAPI) BodyPartList(ctx context.Context) ([]string, error) {
	if err := a.hit(); err != nil {
		return nil, err
	}
	return []string{"chest"}, nil
}

func (a *countingAPI) Exercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	if err := a.hit(); err != nil {
		return nil, err
	}
	e := pushUp
	return &e, nil
}

func (a *countingAPI) ExercisesByTarget(ctx context.Context, target string) ([]catalog.Exercise, error) {
	return a.ExercisesByBodyPart(ctx, target)
}

func (a *countingAPI) ExercisesByEquipment(ctx context.Context, eq string) ([]catalog.Exercise, error) {
	return a.ExercisesByBodyPart(ctx, eq)
}

func setupCached(t *testing.T, api API) (*miniredis.Miniredis, *CachedClient) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewCachedClient(api, cache.NewRedisStore(client), time.Hour)
}

func TestCachedClient_ReadsThrough(t *testing.T) {
	api := &countingAPI{}
	mr, c := setupCached(t, api)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := c.ExercisesByBodyPart(ctx, "chest")
		require.NoError(t, err)
		assert.Equal(t, []catalog.Exercise{pushUp}, got)
	}
	assert.Equal(t, int32(1), api.calls.Load())
	assert.True(t, mr.Exists("exercisedb:bodyPart:chest"))

	ex, err := c.Exercise(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, "push up", ex.Name)
	_, err = c.Exercise(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.calls.Load())
}

func TestCachedClient_WildcardSharesFullListKey(t *testing.T) {
	api := &countingAPI{}
	mr, c := setupCached(t, api)
	ctx := context.Background()

	_, err := c.Exercises(ctx)
	require.NoError(t, err)
	_, err = c.ExercisesByBodyPart(ctx, catalog.Wildcard)
	require.NoError(t, err)

	assert.Equal(t, int32(1), api.calls.Load())
	assert.True(t, mr.Exists("exercisedb:all"))
}

func TestCachedClient_ExpiredEntryRefetches(t *testing.T) {
	api := &countingAPI{}
	mr, c := setupCached(t, api)
	ctx := context.Background()

	_, err := c.BodyPartList(ctx)
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)
	_, err = c.BodyPartList(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.calls.Load())
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	api := &countingAPI{err: errors.New("upstream down")}
	mr, c := setupCached(t, api)

	_, err := c.ExercisesByTarget(context.Background(), "abs")
	require.Error(t, err)
	assert.False(t, mr.Exists("exercisedb:target:abs"))
}

func TestCachedClient_CacheOutageFallsBackToAPI(t *testing.T) {
	api := &countingAPI{}
	mr, c := setupCached(t, api)
	mr.Close()

	got, err := c.ExercisesByEquipment(context.Background(), "barbell")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCachedClient_CollapsesConcurrentMisses(t *testing.T) {
	api := &countingAPI{delay: 50 * time.Millisecond}
	_, c := setupCached(t, api)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Exercises(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Less(t, api.calls.Load(), int32(8))
}

// gatedAPI blocks Exercises until release is closed or its context ends.
type gatedAPI struct {
	countingAPI
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (a *gatedAPI) Exercises(ctx context.Context) ([]catalog.Exercise, error) {
	a.calls.Add(1)
	a.once.Do(func() { close(a.started) })
	select {
	case <-a.release:
		return []catalog.Exercise{pushUp}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestCachedClient_SupersededCallerDoesNotFailJoiner(t *testing.T) {
	api := &gatedAPI{started: make(chan struct{}), release: make(chan struct{})}
	mr, c := setupCached(t, api)

	var seq catalog.Sequencer
	ctxA, _ := seq.Begin(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.Exercises(ctxA)
		errA <- err
	}()
	<-api.started

	// B supersedes A and joins the in-flight fetch for the same key.
	ctxB, ticketB := seq.Begin(context.Background())
	require.ErrorIs(t, <-errA, context.Canceled)

	type result struct {
		got []catalog.Exercise
		err error
	}
	resB := make(chan result, 1)
	go func() {
		got, err := c.Exercises(ctxB)
		resB <- result{got, err}
	}()

	time.Sleep(50 * time.Millisecond)
	close(api.release)

	r := <-resB
	require.NoError(t, r.err)
	assert.Equal(t, []catalog.Exercise{pushUp}, r.got)
	assert.True(t, seq.Commit(ticketB))
	assert.Equal(t, int32(1), api.calls.Load())
	assert.True(t, mr.Exists("exercisedb:all"))
}

func TestCachedClient_CallerCancelReturnsPromptly(t *testing.T) {
	api := &gatedAPI{started: make(chan struct{}), release: make(chan struct{})}
	_, c := setupCached(t, api)
	defer close(api.release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Exercises(ctx)
		done <- err
	}()
	<-api.started
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller still blocked on the shared fetch")
	}
}
