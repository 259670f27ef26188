package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend parses fonts with golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Parse implements Backend.Parse.
func (ximageBackend) Parse(data []byte) (Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face := &ximageFace{font: f}
	face.faces = newFaceCache(func(px float64) (font.Face, error) {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    px,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("glyph: ximage: create face: %w", err)
		}
		return face, nil
	})
	return face, nil
}

type ximageFace struct {
	font  *opentype.Font
	faces *faceCache
}

// Family returns the font family name.
func (f *ximageFace) Family() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Rasterize implements Face.Rasterize.
func (f *ximageFace) Rasterize(r rune, px float64) (Glyph, error) {
	if err := checkSize(px); err != nil {
		return Glyph{}, err
	}

	var g Glyph
	err := f.faces.with(px, func(face font.Face) error {
		// ok is false for runes mapped to .notdef; the .notdef mask is
		// still returned and used.
		dr, mask, maskp, advance, _ := face.Glyph(fixed.Point26_6{}, r)
		if mask == nil {
			return fmt.Errorf("%w: %q", ErrNoGlyph, r)
		}
		g = fromMask(dr, mask, maskp, advance)
		return nil
	})
	return g, err
}
