package dragscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtons(t *testing.T) {
	tests := []struct {
		name                   string
		offset, content, width float64
		left, right            bool
	}{
		{name: "at start", offset: 0, content: 1000, width: 400, left: false, right: true},
		{name: "at end", offset: 600, content: 1000, width: 400, left: true, right: false},
		{name: "within epsilon of end", offset: 599.5, content: 1000, width: 400, left: true, right: false},
		{name: "middle", offset: 300, content: 1000, width: 400, left: true, right: true},
		{name: "content fits", offset: 0, content: 300, width: 400, left: false, right: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := Buttons(tt.offset, tt.content, tt.width)
			assert.Equal(t, tt.left, l)
			assert.Equal(t, tt.right, r)
		})
	}
}

func TestSurface_ScrollByClamps(t *testing.T) {
	s := &Surface{Content: 1000, Visible: 400}

	s.ScrollBy(Right)
	assert.Equal(t, 350.0, s.Target())
	s.ScrollBy(Right)
	assert.Equal(t, 600.0, s.Target())
	s.ScrollBy(Left)
	assert.Equal(t, 250.0, s.Target())
	s.ScrollBy(Left)
	assert.Equal(t, 0.0, s.Target())
}

func TestSurface_AnimateReachesTarget(t *testing.T) {
	s := &Surface{Content: 1000, Visible: 400}
	s.ScrollBy(Right)

	for i := 0; i < 100; i++ {
		s.Animate()
	}
	assert.Equal(t, 350.0, s.Offset)

	l, r := s.Buttons()
	assert.True(t, l)
	assert.True(t, r)
}

func TestSurface_SetOffset(t *testing.T) {
	s := &Surface{Content: 1000, Visible: 400}

	s.SetOffset(-20)
	assert.Equal(t, 0.0, s.Offset)
	s.SetOffset(900)
	assert.Equal(t, 600.0, s.Offset)
	assert.Equal(t, 600.0, s.Target())
}

func TestSurface_ResizeReclamps(t *testing.T) {
	s := &Surface{Content: 1000, Visible: 400}
	s.SetOffset(600)

	s.Resize(1000, 800)
	assert.Equal(t, 200.0, s.Offset)
	assert.Equal(t, 200.0, s.Target())

	_, r := s.Buttons()
	assert.False(t, r)
}
