// Package exercisedb is a small client for the ExerciseDB API on RapidAPI.
package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/depeter/movefit/internal/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://exercisedb.p.rapidapi.com"
	DefaultHost    = "exercisedb.p.rapidapi.com"
	DefaultLimit   = 1500
)

// API endpoint paths.
const (
	pathExercises    = "/exercises"
	pathBodyPart     = "/exercises/bodyPart/"
	pathBodyPartList = "/exercises/bodyPartList"
	pathExercise     = "/exercises/exercise/"
	pathTarget       = "/exercises/target/"
	pathEquipment    = "/exercises/equipment/"
)

// API is everything the application reads from ExerciseDB.
type API interface {
	catalog.Fetcher
	catalog.CategorySource
	Exercise(ctx context.Context, id string) (*catalog.Exercise, error)
	ExercisesByTarget(ctx context.Context, target string) ([]catalog.Exercise, error)
	ExercisesByEquipment(ctx context.Context, equipment string) ([]catalog.Exercise, error)
}

// APIError is a non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
}

// Options configures a Client. Zero fields take the package defaults.
type Options struct {
	BaseURL string
	Host    string
	APIKey  string
	Limit   int
	Timeout time.Duration
}

// Client talks to ExerciseDB over plain HTTP.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	limit      int
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// NewClient creates an ExerciseDB client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		host:       host,
		apiKey:     opts.APIKey,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get performs an authenticated GET and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, op, path string, dst interface{}) error {
	ctx, span := otel.Tracer("exercisedb").Start(ctx, "exercisedb."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.path", path)),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		span.RecordError(err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) list(ctx context.Context, op, path string) ([]catalog.Exercise, error) {
	var out []catalog.Exercise
	if err := c.get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []catalog.Exercise{}
	}
	return out, nil
}

// Exercises lists the whole collection, up to the configured limit.
func (c *Client) Exercises(ctx context.Context) ([]catalog.Exercise, error) {
	out, err := c.list(ctx, "Exercises", fmt.Sprintf("%s?limit=%d", pathExercises, c.limit))
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return out, nil
}

// ExercisesByBodyPart lists the exercises for one body part. The wildcard
// category lists everything.
func (c *Client) ExercisesByBodyPart(ctx context.Context, bodyPart string) ([]catalog.Exercise, error) {
	if catalog.IsWildcard(bodyPart) {
		return c.Exercises(ctx)
	}
	out, err := c.list(ctx, "ExercisesByBodyPart", pathBodyPart+url.PathEscape(bodyPart)+c.limitQuery())
	if err != nil {
		return nil, fmt.Errorf("list body part %q: %w", bodyPart, err)
	}
	return out, nil
}

// BodyPartList returns the server's body-part vocabulary.
func (c *Client) BodyPartList(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "BodyPartList", pathBodyPartList, &out); err != nil {
		return nil, fmt.Errorf("list body parts: %w", err)
	}
	return out, nil
}

// Exercise fetches one record by id.
func (c *Client) Exercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	var out catalog.Exercise
	if err := c.get(ctx, "Exercise", pathExercise+url.PathEscape(id), &out); err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}
	return &out, nil
}

// ExercisesByTarget lists exercises working the given target muscle.
func (c *Client) ExercisesByTarget(ctx context.Context, target string) ([]catalog.Exercise, error) {
	out, err := c.list(ctx, "ExercisesByTarget", pathTarget+url.PathEscape(target)+c.limitQuery())
	if err != nil {
		return nil, fmt.Errorf("list target %q: %w", target, err)
	}
	return out, nil
}

// ExercisesByEquipment lists exercises using the given equipment.
func (c *Client) ExercisesByEquipment(ctx context.Context, equipment string) ([]catalog.Exercise, error) {
	out, err := c.list(ctx, "ExercisesByEquipment", pathEquipment+url.PathEscape(equipment)+c.limitQuery())
	if err != nil {
		return nil, fmt.Errorf("list equipment %q: %w", equipment, err)
	}
	return out, nil
}

func (c *Client) limitQuery() string {
	return fmt.Sprintf("?limit=%d", c.limit)
}
