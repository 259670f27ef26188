// Package glyph rasterizes single glyphs into 8-bit coverage bitmaps.
//
// Fonts are parsed by a named [Backend]. Three backends are registered:
//
//   - "ximage" (default): golang.org/x/image/font/opentype, TrueType and
//     OpenType CFF outlines.
//   - "freetype": github.com/golang/freetype/truetype, TrueType outlines only.
//   - "gotext": outlines from github.com/go-text/typesetting filled with
//     golang.org/x/image/vector.
//
// All backends render without hinting at 72 DPI, so a size of N points is N
// pixels per em. A rune missing from the font renders as the font's .notdef
// glyph.
package glyph

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Metrics describes the placement of a rasterized glyph bitmap.
//
// The bitmap's bottom-left corner sits at (XMin, YMin) relative to the glyph
// origin on the baseline, with Y increasing upward.
//
// Every backend sizes the bitmap from the outline's control box: the pixel
// rectangle, rounded outward, around all on- and off-curve points. For curved
// glyphs this may leave blank rows or columns at the edges, the same ones in
// every backend.
type Metrics struct {
	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// XMin is the horizontal offset of the bitmap's left edge.
	XMin int

	// YMin is the vertical offset of the bitmap's bottom edge.
	YMin int

	// AdvanceWidth is the horizontal pen advance in pixels.
	AdvanceWidth float64

	// AdvanceHeight is the vertical pen advance in pixels. Zero for
	// horizontal layouts.
	AdvanceHeight float64
}

// Glyph is a rasterized glyph.
type Glyph struct {
	Metrics

	// Bitmap holds Width*Height coverage values, row-major, top row first.
	Bitmap []byte
}

// Face rasterizes glyphs of one parsed font at arbitrary pixel sizes.
//
// Faces are not safe for concurrent use.
type Face interface {
	// Rasterize renders r at px pixels per em.
	Rasterize(r rune, px float64) (Glyph, error)
}

// Family returns the family name of face, or "" if the backend does not
// expose one.
func Family(face Face) string {
	if f, ok := face.(interface{ Family() string }); ok {
		return f.Family()
	}
	return ""
}

// fromMask copies a glyph mask as returned by font.Face.Glyph for a dot at
// the origin. The mask is owned by the face and reused on the next call.
func fromMask(dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6) Glyph {
	w, h := dr.Dx(), dr.Dy()
	g := Glyph{
		Metrics: Metrics{
			Width:        w,
			Height:       h,
			XMin:         dr.Min.X,
			YMin:         -dr.Max.Y,
			AdvanceWidth: float64(advance) / 64,
		},
	}
	if w <= 0 || h <= 0 {
		g.Width, g.Height = 0, 0
		return g
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	g.Bitmap = dst.Pix
	return g
}
