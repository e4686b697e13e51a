package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_ListenNotifyRelease(t *testing.T) {
	sig := NewSignal[string](false)

	var got []string
	release := sig.Listen(func(v string) { got = append(got, v) })
	assert.Equal(t, 1, sig.ListenerCount())

	sig.Notify("a")
	sig.Notify("b")
	assert.Equal(t, []string{"a", "b"}, got)

	release()
	assert.Equal(t, 0, sig.ListenerCount())

	sig.Notify("c")
	assert.Equal(t, []string{"a", "b"}, got)

	// Second release is a no-op.
	release()
	assert.Equal(t, 0, sig.ListenerCount())
}

func TestSignal_RegistrationOrder(t *testing.T) {
	sig := NewSignal[int](false)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		sig.Listen(func(int) { order = append(order, i) })
	}
	sig.Notify(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestSignal_ReplayLast(t *testing.T) {
	sig := NewSignal[[2]int](true)

	called := false
	sig.Listen(func([2]int) { called = true })
	assert.False(t, called, "nothing to replay before the first Notify")

	sig.Notify([2]int{1280, 720})

	var replayed [2]int
	sig.Listen(func(v [2]int) { replayed = v })
	assert.Equal(t, [2]int{1280, 720}, replayed)

	last, ok := sig.Last()
	require.True(t, ok)
	assert.Equal(t, [2]int{1280, 720}, last)
}

func TestSignal_ReleaseInsideCallback(t *testing.T) {
	sig := NewSignal[int](false)

	var release func()
	calls := 0
	release = sig.Listen(func(int) {
		calls++
		release()
	})

	sig.Notify(1)
	sig.Notify(2)
	assert.Equal(t, 1, calls)
}

func TestSignal_ConcurrentNotify(t *testing.T) {
	sig := NewSignal[int](false)

	var mu sync.Mutex
	sum := 0
	sig.Listen(func(v int) {
		mu.Lock()
		sum += v
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			sig.Notify(v)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5050, sum)
}

func TestSignal_NilListenerPanics(t *testing.T) {
	sig := NewSignal[int](false)
	assert.Panics(t, func() { sig.Listen(nil) })
}
