package glyph

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// countingFace is a font.Face that records Close calls.
type countingFace struct {
	px     float64
	closed *int
}

func (f countingFace) Close() error { *f.closed++; return nil }

func (countingFace) Glyph(fixed.Point26_6, rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}

func (countingFace) GlyphBounds(rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{}, 0, false
}
func (countingFace) GlyphAdvance(rune) (fixed.Int26_6, bool) { return 0, false }
func (countingFace) Kern(rune, rune) fixed.Int26_6           { return 0 }
func (countingFace) Metrics() font.Metrics                   { return font.Metrics{} }

func TestFaceCache(t *testing.T) {
	var created, closed int
	c := newFaceCache(func(px float64) (font.Face, error) {
		created++
		return countingFace{px: px, closed: &closed}, nil
	})

	use := func(px float64) float64 {
		var got float64
		if err := c.with(px, func(f font.Face) error {
			got = f.(countingFace).px
			return nil
		}); err != nil {
			t.Fatalf("with(%v) error = %v", px, err)
		}
		return got
	}

	for range 3 {
		if got := use(16); got != 16 {
			t.Errorf("face size = %v, want 16", got)
		}
	}
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}

	// Fill past the bound; size 16 was used first and is evicted first.
	for px := range maxFaces {
		use(float64(px + 1))
	}
	if c.len() != maxFaces {
		t.Errorf("len() = %d, want %d", c.len(), maxFaces)
	}
	if closed != 1 {
		t.Errorf("closed = %d, want 1", closed)
	}
	before := created
	use(16)
	if created != before+1 {
		t.Error("evicted size was not recreated")
	}
}

func TestFaceCache_Errors(t *testing.T) {
	errCreate := errors.New("create")
	c := newFaceCache(func(float64) (font.Face, error) { return nil, errCreate })
	err := c.with(12, func(font.Face) error {
		t.Error("fn called without a face")
		return nil
	})
	if !errors.Is(err, errCreate) {
		t.Errorf("with() error = %v, want %v", err, errCreate)
	}
	if c.len() != 0 {
		t.Errorf("len() = %d, want 0 after failed create", c.len())
	}
}
