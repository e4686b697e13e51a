// Package events holds small in-process pub/sub primitives used to wire
// window-level notifications (resizes, config changes) to screens.
package events

import (
	"sort"
	"sync"
)

// Signal delivers values of type T to registered listeners. Listeners are
// called in registration order, outside the signal's lock.
type Signal[T any] struct {
	mu        sync.RWMutex
	listeners map[uint64]func(T)
	nextID    uint64

	replayLast bool
	last       T
	notified   bool
}

// NewSignal creates a Signal. With replayLast set, a new listener is called
// immediately with the most recent value if Notify has run at least once.
func NewSignal[T any](replayLast bool) *Signal[T] {
	return &Signal[T]{
		listeners:  make(map[uint64]func(T)),
		replayLast: replayLast,
	}
}

// Listen registers fn and returns the function that releases it. Releasing
// more than once is harmless.
func (s *Signal[T]) Listen(fn func(T)) (release func()) {
	if fn == nil {
		panic("events: nil listener")
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	replay := s.replayLast && s.notified
	last := s.last
	s.mu.Unlock()

	if replay {
		fn(last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Notify calls every registered listener with v.
func (s *Signal[T]) Notify(v T) {
	s.mu.Lock()
	if s.replayLast {
		s.last = v
		s.notified = true
	}
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(T), len(ids))
	for i, id := range ids {
		fns[i] = s.listeners[id]
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Last returns the most recent value and whether one was recorded. Only
// signals created with replayLast record values.
func (s *Signal[T]) Last() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.notified
}

// ListenerCount returns the number of registered listeners.
func (s *Signal[T]) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}
