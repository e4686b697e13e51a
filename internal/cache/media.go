package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

// maxConcurrentDownloads bounds parallel media fetches.
const maxConcurrentDownloads = 6

// MediaCache keeps exercise media on disk and, converted to T, in memory.
// Animated GIFs are reduced to their first frame.
type MediaCache[T any] struct {
	dir     string
	convert func(image.Image) T
	client  *http.Client

	memory sync.Map // url -> T
	group  singleflight.Group
	sem    chan struct{}
}

// NewMediaCache creates dir if needed. convert turns decoded images into
// the type callers draw with.
func NewMediaCache[T any](dir string, convert func(image.Image) T) (*MediaCache[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media cache dir: %w", err)
	}
	return &MediaCache[T]{
		dir:     dir,
		convert: convert,
		client:  &http.Client{Timeout: 10 * time.Second},
		sem:     make(chan struct{}, maxConcurrentDownloads),
	}, nil
}

// Get returns the in-memory entry for url.
func (mc *MediaCache[T]) Get(url string) (T, bool) {
	if v, ok := mc.memory.Load(url); ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// Load returns the media for url, fetching it at most once across
// concurrent callers.
func (mc *MediaCache[T]) Load(ctx context.Context, url string) (T, error) {
	if v, ok := mc.Get(url); ok {
		return v, nil
	}
	v, err, _ := mc.group.Do(url, func() (interface{}, error) {
		select {
		case mc.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		defer func() { <-mc.sem }()

		img, err := mc.decode(ctx, url)
		if err != nil {
			return nil, err
		}
		out := mc.convert(img)
		mc.memory.Store(url, out)
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// LoadAsync loads url in the background and calls fn on success. fn runs on
// the loader goroutine.
func (mc *MediaCache[T]) LoadAsync(url string, fn func(T)) {
	if url == "" {
		return
	}
	if v, ok := mc.Get(url); ok {
		fn(v)
		return
	}
	go func() {
		v, err := mc.Load(context.Background(), url)
		if err != nil {
			return
		}
		fn(v)
	}()
}

func (mc *MediaCache[T]) decode(ctx context.Context, url string) (image.Image, error) {
	path := mc.path(url)

	if f, err := os.Open(path); err == nil {
		img, _, derr := image.Decode(f)
		f.Close()
		if derr == nil {
			return img, nil
		}
		os.Remove(path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}
	resp, err := mc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	if err == nil {
		// Drain so the disk copy holds every frame, not just the first.
		_, err = io.Copy(f, resp.Body)
	}
	f.Close()
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("decode media: %w", err)
	}
	return img, nil
}

func (mc *MediaCache[T]) path(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(mc.dir, name[:2], name)
}

// Dir returns the disk cache directory.
func (mc *MediaCache[T]) Dir() string {
	return mc.dir
}

// Clear drops every in-memory entry.
func (mc *MediaCache[T]) Clear() {
	mc.memory.Range(func(k, _ any) bool {
		mc.memory.Delete(k)
		return true
	})
}

// ClearDisk removes the disk cache.
func (mc *MediaCache[T]) ClearDisk() error {
	return os.RemoveAll(mc.dir)
}
