package exercisedb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/depeter/movefit/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Path  string
	Query string
	Key   string
	Host  string
}

func newTestServer(t *testing.T, routes map[string]interface{}) (*httptest.Server, func() []recorded) {
	t.Helper()
	var (
		mu  sync.Mutex
		log []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		log = append(log, recorded{
			Path:  r.URL.Path,
			Query: r.URL.RawQuery,
			Key:   r.Header.Get("X-RapidAPI-Key"),
			Host:  r.Header.Get("X-RapidAPI-Host"),
		})
		mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"You have exceeded the rate limit"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), log...)
	}
}

var pushUp = catalog.Exercise{ID: "0001", Name: "push up", Target: "pectorals", BodyPart: "chest", Equipment: "body weight", MediaURL: "https://example.test/0001.gif"}

func TestClient_ExercisesSendsHeadersAndLimit(t *testing.T) {
	srv, calls := newTestServer(t, map[string]interface{}{
		"/exercises": []catalog.Exercise{pushUp},
	})
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "secret", Limit: 50})

	got, err := c.Exercises(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Exercise{pushUp}, got)

	rec := calls()
	require.Len(t, rec, 1)
	assert.Equal(t, "limit=50", rec[0].Query)
	assert.Equal(t, "secret", rec[0].Key)
	assert.Equal(t, DefaultHost, rec[0].Host)
}

func TestClient_BodyPartEscapesAndWildcard(t *testing.T) {
	srv, calls := newTestServer(t, map[string]interface{}{
		"/exercises/bodyPart/upper legs": []catalog.Exercise{},
		"/exercises":                     []catalog.Exercise{pushUp},
	})
	c := NewClient(Options{BaseURL: srv.URL})

	got, err := c.ExercisesByBodyPart(context.Background(), "upper legs")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = c.ExercisesByBodyPart(context.Background(), catalog.Wildcard)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	rec := calls()
	require.Len(t, rec, 2)
	assert.Equal(t, "/exercises/bodyPart/upper legs", rec[0].Path)
	assert.Equal(t, "/exercises", rec[1].Path)
}

func TestClient_OtherEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, map[string]interface{}{
		"/exercises/bodyPartList":      []string{"back", "chest"},
		"/exercises/exercise/0001":     pushUp,
		"/exercises/target/pectorals":  []catalog.Exercise{pushUp},
		"/exercises/equipment/barbell": []catalog.Exercise{},
	})
	c := NewClient(Options{BaseURL: srv.URL})
	ctx := context.Background()

	parts, err := c.BodyPartList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"back", "chest"}, parts)

	ex, err := c.Exercise(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, pushUp, *ex)

	byTarget, err := c.ExercisesByTarget(ctx, "pectorals")
	require.NoError(t, err)
	assert.Len(t, byTarget, 1)

	byEquipment, err := c.ExercisesByEquipment(ctx, "barbell")
	require.NoError(t, err)
	assert.Empty(t, byEquipment)
}

func TestClient_APIError(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	c := NewClient(Options{BaseURL: srv.URL})

	_, err := c.Exercises(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Contains(t, apiErr.Body, "rate limit")
}

func TestClient_CanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, map[string]interface{}{"/exercises": []catalog.Exercise{}})
	c := NewClient(Options{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Exercises(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{BaseURL: "exercisedb.example.test/"})
	assert.Equal(t, "https://exercisedb.example.test", c.baseURL)
	assert.Equal(t, DefaultLimit, c.limit)

	c = NewClient(Options{})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}

func TestClient_SatisfiesResolver(t *testing.T) {
	srv, calls := newTestServer(t, map[string]interface{}{
		"/exercises/bodyPart/chest": []catalog.Exercise{pushUp},
	})
	c := NewClient(Options{BaseURL: srv.URL})

	res := catalog.Resolve(context.Background(), "Chest", []string{catalog.Wildcard, "back", "chest"}, c)
	require.NoError(t, res.Err)
	assert.Equal(t, "chest", res.Category)
	assert.Len(t, res.Results, 1)
	assert.Len(t, calls(), 1)
}
