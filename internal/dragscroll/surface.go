package dragscroll

// Direction of an arrow-button scroll.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// animSpeed is the lerp factor applied per frame.
const animSpeed = 0.2

// Buttons reports which arrow buttons should be shown for a surface scrolled
// to offset, with content total width and visible viewport width.
func Buttons(offset, content, visible float64) (left, right bool) {
	left = offset > 0
	right = content > visible && offset < content-visible-EdgeEpsilon
	return left, right
}

// Surface models the scroll position of one horizontal carousel. Offset is
// the rendered position; arrow scrolls move an animated target toward which
// Animate eases, while drags set Offset directly.
type Surface struct {
	Offset  float64
	Content float64
	Visible float64

	target float64
}

// MaxOffset is the furthest the surface can scroll.
func (s *Surface) MaxOffset() float64 {
	if s.Content <= s.Visible {
		return 0
	}
	return s.Content - s.Visible
}

func (s *Surface) clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if m := s.MaxOffset(); v > m {
		return m
	}
	return v
}

// Target returns the offset the surface is animating toward.
func (s *Surface) Target() float64 {
	return s.target
}

// ScrollBy moves the animated target one ArrowDistance in dir.
func (s *Surface) ScrollBy(dir Direction) {
	s.target = s.clamp(s.target + float64(dir)*ArrowDistance)
}

// ScrollTo sets the animated target directly.
func (s *Surface) ScrollTo(offset float64) {
	s.target = s.clamp(offset)
}

// SetOffset jumps to offset without animation, as a drag does.
func (s *Surface) SetOffset(offset float64) {
	s.Offset = s.clamp(offset)
	s.target = s.Offset
}

// Animate advances Offset one frame toward the target, snapping when close.
func (s *Surface) Animate() {
	d := s.target - s.Offset
	if d < 0.5 && d > -0.5 {
		s.Offset = s.target
		return
	}
	s.Offset += d * animSpeed
}

// Resize updates the content and viewport widths and re-clamps both the
// offset and the target.
func (s *Surface) Resize(content, visible float64) {
	s.Content = content
	s.Visible = visible
	s.Offset = s.clamp(s.Offset)
	s.target = s.clamp(s.target)
}

// Buttons reports arrow visibility for the current offset.
func (s *Surface) Buttons() (left, right bool) {
	return Buttons(s.Offset, s.Content, s.Visible)
}
