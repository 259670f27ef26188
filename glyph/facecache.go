package glyph

import (
	"math"
	"sync"

	"golang.org/x/image/font"
)

// maxFaces bounds the number of sizes kept per parsed font.
const maxFaces = 8

// faceCache keeps one font.Face per pixel size and evicts the least recently
// used size once more than maxFaces are cached.
//
// font.Face implementations reuse their mask buffers, so a face is only
// touched under mu. faceCache is safe for concurrent use.
type faceCache struct {
	mu      sync.Mutex
	tick    int64 // monotonic access counter
	entries map[float64]*faceEntry
	newFace func(px float64) (font.Face, error)
}

type faceEntry struct {
	face  font.Face
	atime int64
}

func newFaceCache(newFace func(px float64) (font.Face, error)) *faceCache {
	return &faceCache{
		entries: make(map[float64]*faceEntry),
		newFace: newFace,
	}
}

// with calls fn with the face for px, creating it on first use. fn runs under
// the cache lock and must not retain the face.
func (c *faceCache) with(px float64, fn func(font.Face) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	e, ok := c.entries[px]
	if !ok {
		face, err := c.newFace(px)
		if err != nil {
			return err
		}
		e = &faceEntry{face: face}
		c.entries[px] = e
		if len(c.entries) > maxFaces {
			c.evictOldest(px)
		}
	}
	e.atime = c.tick
	return fn(e.face)
}

// evictOldest drops the least recently used face other than keep.
// Caller must hold c.mu.
func (c *faceCache) evictOldest(keep float64) {
	oldest, atime := math.NaN(), int64(math.MaxInt64)
	for px, e := range c.entries {
		if px != keep && e.atime < atime {
			oldest, atime = px, e.atime
		}
	}
	if e, ok := c.entries[oldest]; ok {
		_ = e.face.Close()
		delete(c.entries, oldest)
	}
}

// len returns the number of cached sizes.
func (c *faceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
