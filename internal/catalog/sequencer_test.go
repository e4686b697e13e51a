package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer_LatestWins(t *testing.T) {
	var s Sequencer

	ctx1, t1 := s.Begin(context.Background())
	ctx2, t2 := s.Begin(context.Background())

	// Starting the second request cancels the first.
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())

	// The slow first search resolves after the second: it must not commit.
	assert.True(t, s.Commit(t2))
	assert.False(t, s.Commit(t1))
}

func TestSequencer_Stop(t *testing.T) {
	var s Sequencer

	ctx, tk := s.Begin(context.Background())
	s.Stop()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, s.Commit(tk))
}
