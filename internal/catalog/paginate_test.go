package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeExercises(n int) []Exercise {
	out := make([]Exercise, n)
	for i := range out {
		out[i] = Exercise{ID: fmt.Sprintf("%04d", i)}
	}
	return out
}

func TestPage(t *testing.T) {
	records := makeExercises(20)

	assert.Equal(t, 3, PageCount(len(records)))
	assert.Equal(t, records[0:9], Page(records, 1))
	assert.Equal(t, records[9:18], Page(records, 2))

	last := Page(records, 3)
	assert.Len(t, last, 2)
	assert.Equal(t, records[18:20], last)

	assert.Empty(t, Page(records, 4))
	assert.Empty(t, Page(records, 0))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(9))
	assert.Equal(t, 2, PageCount(10))
}

func TestPaginated(t *testing.T) {
	assert.False(t, Paginated(9))
	assert.True(t, Paginated(10))
}
