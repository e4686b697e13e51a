package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExercise_Description(t *testing.T) {
	e := Exercise{Name: "push-up", Target: "pectorals"}
	assert.Equal(t,
		"Exercises keep you strong. push-up is one of the best exercises to target your pectorals. It will help you improve your mood and gain energy.",
		e.Description())
}

func TestExercise_VideoQuery(t *testing.T) {
	assert.Equal(t, "barbell curl exercise", Exercise{Name: "barbell curl"}.VideoQuery())
}

func TestSimilar(t *testing.T) {
	candidates := []Exercise{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}

	got := Similar(candidates, "2", 2)
	assert.Equal(t, []Exercise{{ID: "1"}, {ID: "3"}}, got)

	assert.Len(t, Similar(candidates, "9", 0), 4)
	assert.Empty(t, Similar(nil, "1", 5))
}
