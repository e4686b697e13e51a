package cache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func mediaServer(t *testing.T, body []byte) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == "/missing.gif" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func bounds(img image.Image) image.Rectangle { return img.Bounds() }

func TestMediaCache_LoadAndMemoryHit(t *testing.T) {
	srv, hits := mediaServer(t, pngBytes(t, 4, 3))
	mc, err := NewMediaCache(t.TempDir(), bounds)
	require.NoError(t, err)

	url := srv.URL + "/0001.gif"
	_, ok := mc.Get(url)
	assert.False(t, ok)

	got, err := mc.Load(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), got)

	got, ok = mc.Get(url)
	assert.True(t, ok)
	assert.Equal(t, 4, got.Dx())

	_, err = mc.Load(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestMediaCache_ConcurrentLoadsShareOneDownload(t *testing.T) {
	srv, hits := mediaServer(t, pngBytes(t, 2, 2))
	mc, err := NewMediaCache(t.TempDir(), bounds)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mc.Load(context.Background(), srv.URL+"/same.gif")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(hits), int32(10))
	_, ok := mc.Get(srv.URL + "/same.gif")
	assert.True(t, ok)
}

func TestMediaCache_DiskCopySurvivesRestart(t *testing.T) {
	srv, hits := mediaServer(t, pngBytes(t, 5, 5))
	dir := t.TempDir()

	first, err := NewMediaCache(dir, bounds)
	require.NoError(t, err)
	url := srv.URL + "/0002.gif"
	_, err = first.Load(context.Background(), url)
	require.NoError(t, err)

	second, err := NewMediaCache(dir, bounds)
	require.NoError(t, err)
	got, err := second.Load(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Dx())
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestMediaCache_HTTPError(t *testing.T) {
	srv, _ := mediaServer(t, nil)
	mc, err := NewMediaCache(t.TempDir(), bounds)
	require.NoError(t, err)

	_, err = mc.Load(context.Background(), srv.URL+"/missing.gif")
	assert.Error(t, err)
	_, ok := mc.Get(srv.URL + "/missing.gif")
	assert.False(t, ok)
}

func TestMediaCache_LoadAsync(t *testing.T) {
	srv, _ := mediaServer(t, pngBytes(t, 1, 1))
	mc, err := NewMediaCache(t.TempDir(), bounds)
	require.NoError(t, err)

	done := make(chan image.Rectangle, 1)
	mc.LoadAsync(srv.URL+"/async.gif", func(r image.Rectangle) { done <- r })
	assert.Equal(t, 1, (<-done).Dx())

	mc.Clear()
	_, ok := mc.Get(srv.URL + "/async.gif")
	assert.False(t, ok)
}
