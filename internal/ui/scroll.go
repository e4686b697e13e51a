package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	// MaxScrollY bounds the target. Zero means unbounded.
	MaxScrollY float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
func (s *ScrollState) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.ScrollTo(s.TargetScrollY - wy*ScrollWheelSpeed)
	}
}

// ScrollTo sets the animated target, clamped to the content.
func (s *ScrollState) ScrollTo(y float64) {
	if s.MaxScrollY > 0 && y > s.MaxScrollY {
		y = s.MaxScrollY
	}
	if y < 0 {
		y = 0
	}
	s.TargetScrollY = y
}

// Animate performs smooth scroll interpolation. Call this from Draw().
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureVisible scrolls the minimum amount needed to show [top, bottom]
// inside a viewport of viewHeight below the navbar.
func (s *ScrollState) EnsureVisible(top, bottom, viewHeight float64) {
	if bottom > s.TargetScrollY+viewHeight {
		s.ScrollTo(bottom - viewHeight)
	}
	if top < s.TargetScrollY+NavBarHeight {
		s.ScrollTo(top - NavBarHeight)
	}
}
