package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"none", 1, 0, []int{}},
		{"short", 2, 5, []int{1, 2, 3, 4, 5}},
		{"seven", 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"start", 1, 20, []int{1, 2, 3, 4, 0, 20}},
		{"middle", 10, 20, []int{1, 0, 9, 10, 11, 0, 20}},
		{"end", 20, 20, []int{1, 0, 17, 18, 19, 20}},
		{"near start", 3, 20, []int{1, 2, 3, 4, 0, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageWindow(tt.current, tt.total))
		})
	}
}

func TestPagerStep(t *testing.T) {
	p := Pager{Current: 1, Total: 3}

	assert.False(t, p.Step(-1))
	assert.True(t, p.Step(1))
	assert.True(t, p.Step(1))
	assert.Equal(t, 3, p.Current)
	assert.False(t, p.Step(1))
	assert.Equal(t, 3, p.Current)
}

func TestPagerHandleClickWithoutLayout(t *testing.T) {
	p := Pager{Current: 1, Total: 3}
	_, ok := p.HandleClick(10, 10)
	assert.False(t, ok)
}
