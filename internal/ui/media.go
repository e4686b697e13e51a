package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/movefit/internal/cache"
)

// mediaLoader looks up exercise media for drawing and starts a background
// load the first time a URL is missed. Not safe for concurrent use; screens
// call it under their own lock.
type mediaLoader struct {
	cache     *cache.MediaCache[*ebiten.Image]
	requested map[string]bool
}

func newMediaLoader(c *cache.MediaCache[*ebiten.Image]) mediaLoader {
	return mediaLoader{cache: c, requested: make(map[string]bool)}
}

func (m *mediaLoader) get(url string) *ebiten.Image {
	if url == "" || m.cache == nil {
		return nil
	}
	if img, ok := m.cache.Get(url); ok {
		return img
	}
	if !m.requested[url] {
		m.requested[url] = true
		m.cache.LoadAsync(url, func(*ebiten.Image) {})
	}
	return nil
}
