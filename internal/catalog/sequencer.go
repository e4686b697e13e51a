package catalog

import (
	"context"
	"sync"
)

// Ticket identifies one search or browse request issued through a Sequencer.
type Ticket uint64

// Sequencer orders overlapping result-set requests so that the latest one
// wins. Starting a request cancels the context of the one before it, and
// Commit refuses results from anything but the latest ticket.
type Sequencer struct {
	mu     sync.Mutex
	latest Ticket
	cancel context.CancelFunc
}

// Begin starts a new request derived from parent.
func (s *Sequencer) Begin(parent context.Context) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	s.cancel = cancel
	return ctx, s.latest
}

// Commit reports whether t is still the latest request. The winning request's
// context is released.
func (s *Sequencer) Commit(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t != s.latest {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// Stop cancels whatever request is in flight.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.latest++
}
