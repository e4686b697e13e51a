package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	all        []Exercise
	byPart     map[string][]Exercise
	err        error
	allCalls   int
	partCalls  []string
	categories []string
}

func (f *fakeFetcher) Exercises(ctx context.Context) ([]Exercise, error) {
	f.allCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func (f *fakeFetcher) ExercisesByBodyPart(ctx context.Context, part string) ([]Exercise, error) {
	f.partCalls = append(f.partCalls, part)
	if f.err != nil {
		return nil, f.err
	}
	return f.byPart[part], nil
}

func (f *fakeFetcher) BodyPartList(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

var (
	pushUp = Exercise{ID: "0001", Name: "push up", Target: "chest", Equipment: "body weight", BodyPart: "chest"}
	squat  = Exercise{ID: "0002", Name: "squat", Target: "legs", Equipment: "barbell", BodyPart: "upper legs"}
)

func testCategories() []string {
	return append([]string{Wildcard}, FallbackBodyParts...)
}

func TestResolve_CategoryMatchUsesCategoryFetchOnly(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
	}{
		{name: "exact", query: "chest", category: "chest"},
		{name: "mixed case and padding", query: "  Upper Legs ", category: "upper legs"},
		{name: "query inside category", query: "should", category: "shoulders"},
		{name: "category inside query", query: "waist twist", category: "waist"},
		{name: "wildcard wins by scan order", query: "all", category: Wildcard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{byPart: map[string][]Exercise{tt.category: {pushUp}}}
			res := Resolve(context.Background(), tt.query, testCategories(), f)

			require.True(t, res.Matched)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, []string{tt.category}, f.partCalls)
			assert.Zero(t, f.allCalls)
			assert.Equal(t, []Exercise{pushUp}, res.Results)
			assert.NoError(t, res.Err)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	// "arms" is contained in both "lower arms" and "upper arms".
	f := &fakeFetcher{byPart: map[string][]Exercise{}}
	res := Resolve(context.Background(), "arms", testCategories(), f)

	assert.Equal(t, "lower arms", res.Category)
	assert.Equal(t, []string{"lower arms"}, f.partCalls)
}

func TestResolve_MatchedCategoryIsNotFilteredLocally(t *testing.T) {
	f := &fakeFetcher{byPart: map[string][]Exercise{"chest": {pushUp, squat}}}
	res := Resolve(context.Background(), "chest squat", testCategories(), f)

	assert.Equal(t, "chest", res.Category)
	assert.Len(t, res.Results, 2)
}

func TestResolve_LocalFilter(t *testing.T) {
	// Categories deliberately exclude "chest" so the query falls through to the filter.
	f := &fakeFetcher{all: []Exercise{pushUp, squat}}
	res := Resolve(context.Background(), "chest push", []string{Wildcard, "back"}, f)

	assert.False(t, res.Matched)
	assert.Empty(t, res.Category)
	assert.Equal(t, 1, f.allCalls)
	assert.Empty(t, f.partCalls)
	assert.Equal(t, []Exercise{pushUp}, res.Results)
}

func TestResolve_NoMatchReturnsEmptyNonNil(t *testing.T) {
	f := &fakeFetcher{all: []Exercise{pushUp, squat}}
	res := Resolve(context.Background(), "kettlebell swing", testCategories(), f)

	require.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestResolve_EmptyInputIsNoop(t *testing.T) {
	f := &fakeFetcher{}
	res := Resolve(context.Background(), "   ", testCategories(), f)

	assert.True(t, res.Skipped)
	assert.Zero(t, f.allCalls)
	assert.Empty(t, f.partCalls)
	assert.Nil(t, res.Results)
}

func TestResolve_FetchFailureYieldsEmptyResultSet(t *testing.T) {
	boom := errors.New("boom")

	f := &fakeFetcher{err: boom}
	res := Resolve(context.Background(), "chest", testCategories(), f)
	require.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.ErrorIs(t, res.Err, boom)

	f = &fakeFetcher{err: boom}
	res = Resolve(context.Background(), "dumbbell curl", testCategories(), f)
	require.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.ErrorIs(t, res.Err, boom)
}

func TestFilter_EveryTermMustMatch(t *testing.T) {
	records := []Exercise{pushUp, squat}

	assert.Equal(t, []Exercise{pushUp}, Filter(records, "chest push"))
	assert.Equal(t, []Exercise{squat}, Filter(records, "barbell"))
	assert.Equal(t, []Exercise{squat}, Filter(records, "upper   legs"))
	assert.Empty(t, Filter(records, "push barbell"))
}

func TestMatchCategory_EmptyQuery(t *testing.T) {
	_, ok := MatchCategory("", testCategories())
	assert.False(t, ok)
}

func TestBrowse(t *testing.T) {
	f := &fakeFetcher{all: []Exercise{pushUp, squat}, byPart: map[string][]Exercise{"chest": {pushUp}}}

	got, err := Browse(context.Background(), Wildcard, f)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Browse(context.Background(), "chest", f)
	require.NoError(t, err)
	assert.Equal(t, []Exercise{pushUp}, got)

	f.err = errors.New("down")
	got, err = Browse(context.Background(), "chest", f)
	assert.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadCategories(t *testing.T) {
	f := &fakeFetcher{categories: []string{"neck", "back"}}
	assert.Equal(t, []string{Wildcard, "neck", "back"}, LoadCategories(context.Background(), f))

	f.err = errors.New("offline")
	got := LoadCategories(context.Background(), f)
	require.Len(t, got, len(FallbackBodyParts)+1)
	assert.Equal(t, Wildcard, got[0])
	assert.Equal(t, FallbackBodyParts, got[1:])
}

func TestExercise_SearchText(t *testing.T) {
	e := Exercise{Name: "Push Up", Target: "Chest", Equipment: "Body Weight", BodyPart: "Chest"}
	assert.Equal(t, "push up chest body weight chest", e.SearchText())
}
