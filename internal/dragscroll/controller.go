// Package dragscroll turns raw pointer events on a horizontally scrollable
// surface into drag scrolls and tells click handlers when a click is really
// the tail end of a drag.
package dragscroll

import "time"

const (
	// DragThreshold is the horizontal distance in pixels a pointer must travel
	// before a press counts as a drag rather than a click.
	DragThreshold = 5
	// DragTimeout is the minimum press duration for a release to suppress the
	// click that follows it.
	DragTimeout = 150 * time.Millisecond
	// ResetDelay is how long clicks stay suppressed after a drag ends.
	ResetDelay = 50 * time.Millisecond
	// ArrowDistance is how far one arrow-button press scrolls.
	ArrowDistance = 350
	// EdgeEpsilon keeps the right arrow from flickering at the far edge.
	EdgeEpsilon = 1
)

// Clock returns the current time. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
func SystemClock() Clock { return systemClock{} }

// State of a Controller.
type State int

const (
	Idle State = iota
	Dragging
	SuppressingClick
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case SuppressingClick:
		return "suppressing-click"
	}
	return "unknown"
}

// Controller is the drag/click state machine for one carousel. It is not safe
// for concurrent use; the owning carousel drives it from the UI loop.
type Controller struct {
	clock Clock
	state State

	originX      float64
	originOffset float64
	startedAt    time.Time
	hasMoved     bool

	suppressUntil time.Time
}

// NewController returns an idle controller. A nil clock means SystemClock.
func NewController(clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	return &Controller{clock: clock}
}

// State returns the current state, expiring an elapsed suppression window.
func (c *Controller) State() State {
	c.expire()
	return c.state
}

// PointerDown starts a drag at pointer x over a surface currently scrolled
// to offset.
func (c *Controller) PointerDown(x, offset float64) {
	c.state = Dragging
	c.originX = x
	c.originOffset = offset
	c.startedAt = c.clock.Now()
	c.hasMoved = false
	c.suppressUntil = time.Time{}
}

// PointerMove reports the offset the surface should jump to for pointer x.
// The offset is always relative to where the drag started, never cumulative.
// ok is false when no drag is in progress.
func (c *Controller) PointerMove(x float64) (offset float64, ok bool) {
	if c.state != Dragging {
		return 0, false
	}
	dx := x - c.originX
	if dx > DragThreshold || dx < -DragThreshold {
		c.hasMoved = true
	}
	return c.originOffset - dx, true
}

// PointerUp ends the drag. A short press never suppresses the following
// click; a longer one that moved past the threshold suppresses clicks for
// ResetDelay.
func (c *Controller) PointerUp() {
	if c.state != Dragging {
		return
	}
	now := c.clock.Now()
	if now.Sub(c.startedAt) < DragTimeout {
		c.hasMoved = false
		c.state = Idle
		return
	}
	if c.hasMoved {
		c.state = SuppressingClick
		c.suppressUntil = now.Add(ResetDelay)
		return
	}
	c.state = Idle
}

// PointerLeave is a pointer-up caused by the pointer leaving the surface.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}

// SuppressClick reports whether a click arriving now belongs to a drag and
// should be swallowed.
func (c *Controller) SuppressClick() bool {
	c.expire()
	return c.hasMoved
}

// HasMoved reports whether the current or just-finished drag crossed
// DragThreshold.
func (c *Controller) HasMoved() bool {
	c.expire()
	return c.hasMoved
}

// Dragging reports whether a pointer is held down on the surface.
func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

func (c *Controller) expire() {
	if c.state != SuppressingClick {
		return
	}
	if !c.clock.Now().Before(c.suppressUntil) {
		c.hasMoved = false
		c.state = Idle
	}
}
