package glyph

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// freetypeBackend parses TrueType fonts with github.com/golang/freetype.
type freetypeBackend struct{}

// Parse implements Backend.Parse.
func (freetypeBackend) Parse(data []byte) (Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	face := &freetypeFace{font: f}
	face.faces = newFaceCache(func(px float64) (font.Face, error) {
		return truetype.NewFace(f, &truetype.Options{
			Size:    px,
			DPI:     72,
			Hinting: font.HintingNone,
		}), nil
	})
	return face, nil
}

type freetypeFace struct {
	font  *truetype.Font
	faces *faceCache
}

// Family returns the font family name.
func (f *freetypeFace) Family() string {
	return f.font.Name(truetype.NameIDFontFamily)
}

// Rasterize implements Face.Rasterize.
func (f *freetypeFace) Rasterize(r rune, px float64) (Glyph, error) {
	if err := checkSize(px); err != nil {
		return Glyph{}, err
	}

	var g Glyph
	err := f.faces.with(px, func(face font.Face) error {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok || mask == nil {
			return fmt.Errorf("%w: %q", ErrNoGlyph, r)
		}
		g = fromMask(dr, mask, maskp, advance)
		return nil
	})
	return g, err
}
