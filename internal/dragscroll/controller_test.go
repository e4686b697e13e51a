package dragscroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestController_SmallMovementIsNotADrag(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(100, 0)
	off, ok := c.PointerMove(104)
	require.True(t, ok)
	assert.Equal(t, -4.0, off)
	off, _ = c.PointerMove(95)
	assert.Equal(t, 5.0, off)

	assert.False(t, c.HasMoved())
	clock.Advance(300 * time.Millisecond)
	c.PointerUp()
	assert.False(t, c.SuppressClick())
	assert.Equal(t, Idle, c.State())
}

func TestController_MovementPastThreshold(t *testing.T) {
	c := NewController(newFakeClock())

	c.PointerDown(100, 50)
	_, _ = c.PointerMove(106)
	assert.True(t, c.HasMoved())
	assert.True(t, c.SuppressClick(), "a moving drag suppresses clicks")

	// Moving back inside the threshold does not clear the flag.
	_, _ = c.PointerMove(101)
	assert.True(t, c.HasMoved())
}

func TestController_OffsetIsRelativeToOrigin(t *testing.T) {
	c := NewController(newFakeClock())

	c.PointerDown(200, 300)
	for _, x := range []float64{190, 150, 120} {
		_, _ = c.PointerMove(x)
	}
	off, ok := c.PointerMove(100)
	require.True(t, ok)
	assert.Equal(t, 400.0, off)
}

func TestController_MoveWithoutDrag(t *testing.T) {
	c := NewController(newFakeClock())
	_, ok := c.PointerMove(10)
	assert.False(t, ok)
}

func TestController_QuickFlickNeverSuppresses(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(0, 0)
	_, _ = c.PointerMove(80)
	require.True(t, c.HasMoved())

	clock.Advance(100 * time.Millisecond)
	c.PointerUp()

	assert.False(t, c.HasMoved())
	assert.False(t, c.SuppressClick())
	assert.Equal(t, Idle, c.State())
}

func TestController_LongDragSuppressesForResetDelay(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(0, 0)
	_, _ = c.PointerMove(-40)
	clock.Advance(200 * time.Millisecond)
	c.PointerUp()

	assert.Equal(t, SuppressingClick, c.State())
	assert.True(t, c.SuppressClick())

	clock.Advance(49 * time.Millisecond)
	assert.True(t, c.SuppressClick())

	clock.Advance(time.Millisecond)
	assert.False(t, c.SuppressClick())
	assert.Equal(t, Idle, c.State())
}

func TestController_LongPressWithoutMovement(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(10, 0)
	clock.Advance(time.Second)
	c.PointerUp()

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.SuppressClick())
}

func TestController_PointerLeaveEndsDrag(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(0, 0)
	_, _ = c.PointerMove(30)
	clock.Advance(DragTimeout)
	c.PointerLeave()

	assert.False(t, c.Dragging())
	assert.Equal(t, SuppressingClick, c.State())
}

func TestController_NewDragDuringSuppression(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock)

	c.PointerDown(0, 0)
	_, _ = c.PointerMove(30)
	clock.Advance(time.Second)
	c.PointerUp()
	require.Equal(t, SuppressingClick, c.State())

	c.PointerDown(0, 0)
	assert.Equal(t, Dragging, c.State())
	assert.False(t, c.HasMoved())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "suppressing-click", SuppressingClick.String())
}
