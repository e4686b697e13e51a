package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Fetcher is the subset of the ExerciseDB client the resolver depends on.
type Fetcher interface {
	Exercises(ctx context.Context) ([]Exercise, error)
	ExercisesByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error)
}

// Resolution is the outcome of resolving one free-text query.
type Resolution struct {
	Query    string // normalized query
	Category string // matched category, empty when Matched is false
	Matched  bool
	Skipped  bool // empty input, nothing was fetched
	Results  []Exercise
	Err      error // fetch failure; Results is empty when set
}

// Normalize trims and lowercases a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// MatchCategory returns the first category, in scan order, that contains the
// query or is contained by it. query must already be normalized.
func MatchCategory(query string, categories []string) (string, bool) {
	if query == "" {
		return "", false
	}
	for _, c := range categories {
		lc := strings.ToLower(c)
		if strings.Contains(lc, query) || strings.Contains(query, lc) {
			return c, true
		}
	}
	return "", false
}

// Filter keeps the records whose search text contains every whitespace
// separated term of query. query must already be normalized.
func Filter(records []Exercise, query string) []Exercise {
	terms := strings.Fields(query)
	out := make([]Exercise, 0, len(records))
	for _, r := range records {
		text := r.SearchText()
		keep := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// Resolve turns a query into a result set. A query naming a category defers
// entirely to the server-side category fetch; anything else fetches the full
// collection and filters it locally. Fetch failures never propagate: they
// produce an empty result set with Err set.
func Resolve(ctx context.Context, query string, categories []string, f Fetcher) Resolution {
	q := Normalize(query)
	res := Resolution{Query: q}
	if q == "" {
		res.Skipped = true
		return res
	}

	if category, ok := MatchCategory(q, categories); ok {
		res.Category = category
		res.Matched = true
		records, err := f.ExercisesByBodyPart(ctx, category)
		if err != nil {
			res.Results = []Exercise{}
			res.Err = fmt.Errorf("fetch body part %q: %w", category, err)
			return res
		}
		res.Results = records
		return res
	}

	all, err := f.Exercises(ctx)
	if err != nil {
		res.Results = []Exercise{}
		res.Err = fmt.Errorf("fetch exercises: %w", err)
		return res
	}
	res.Results = Filter(all, q)
	return res
}

// Browse refreshes the result set for a selected category. The wildcard
// lists every exercise.
func Browse(ctx context.Context, category string, f Fetcher) ([]Exercise, error) {
	var (
		records []Exercise
		err     error
	)
	if IsWildcard(category) {
		records, err = f.Exercises(ctx)
	} else {
		records, err = f.ExercisesByBodyPart(ctx, category)
	}
	if err != nil {
		return []Exercise{}, fmt.Errorf("browse %q: %w", category, err)
	}
	return records, nil
}
