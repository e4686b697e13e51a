package render

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/movefit/internal/catalog"
)

func exercises(n int) []catalog.Exercise {
	out := make([]catalog.Exercise, n)
	for i := range out {
		out[i] = catalog.Exercise{
			ID:        fmt.Sprintf("%04d", i),
			Name:      fmt.Sprintf("exercise %d", i),
			BodyPart:  "back",
			Target:    "lats",
			Equipment: "cable",
		}
	}
	return out
}

func TestResolutionMatchedCategory(t *testing.T) {
	var buf bytes.Buffer
	res := catalog.Resolution{Query: "back", Category: "back", Matched: true, Results: exercises(3)}

	require.NoError(t, Resolution(&buf, res, 1))

	out := buf.String()
	assert.Contains(t, out, "Body part: back")
	assert.Contains(t, out, "3 exercises")
	assert.NotContains(t, out, "page")
	assert.Contains(t, out, "exercise 2")
	assert.Contains(t, out, "back · lats · cable")
}

func TestResolutionPaginates(t *testing.T) {
	var buf bytes.Buffer
	res := catalog.Resolution{Query: "row", Results: exercises(20)}

	require.NoError(t, Resolution(&buf, res, 3))

	out := buf.String()
	assert.Contains(t, out, `Exercises matching "row"`)
	assert.Contains(t, out, "20 exercises, page 3 of 3")
	assert.Contains(t, out, "exercise 18")
	assert.NotContains(t, out, "exercise 17")
}

func TestResolutionClampsPage(t *testing.T) {
	var buf bytes.Buffer
	res := catalog.Resolution{Query: "row", Results: exercises(10)}

	require.NoError(t, Resolution(&buf, res, 99))
	assert.Contains(t, buf.String(), "page 2 of 2")
	assert.Contains(t, buf.String(), "exercise 9")

	buf.Reset()
	require.NoError(t, Resolution(&buf, res, 0))
	assert.Contains(t, buf.String(), "page 1 of 2")
}

func TestResolutionEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Resolution(&buf, catalog.Resolution{Query: "zzz"}, 1))
	assert.Contains(t, buf.String(), "No exercises found.")

	buf.Reset()
	require.NoError(t, Resolution(&buf, catalog.Resolution{Skipped: true}, 1))
	assert.Equal(t, "Nothing to search for.\n", buf.String())
}

func TestBodyParts(t *testing.T) {
	var buf bytes.Buffer
	BodyParts(&buf, []string{catalog.Wildcard, "back", "waist"})

	out := buf.String()
	assert.Contains(t, out, "Body parts")
	assert.Contains(t, out, "all")
	assert.Contains(t, out, "  back\n")
	assert.Contains(t, out, "  waist\n")
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, nonEmpty("a", "", "c"))
	assert.Empty(t, nonEmpty("", ""))
}

func TestResolutionFetchFailureRendersEmptySet(t *testing.T) {
	var buf bytes.Buffer
	res := catalog.Resolution{Query: "row", Results: []catalog.Exercise{}, Err: errors.New("fetch exercises: upstream down")}

	require.NoError(t, Resolution(&buf, res, 1))

	out := buf.String()
	assert.Contains(t, out, "Could not load exercises: fetch exercises: upstream down")
	assert.Contains(t, out, "No exercises found.")
}
