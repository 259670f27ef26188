package glyph

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextBackend reads outlines with github.com/go-text/typesetting and fills
// them with golang.org/x/image/vector.
type gotextBackend struct{}

// Parse implements Backend.Parse.
func (gotextBackend) Parse(data []byte) (Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if face.Upem() == 0 {
		return nil, fmt.Errorf("glyph: gotext: font has zero units per em")
	}
	return &gotextFace{face: face}, nil
}

type gotextFace struct {
	face *font.Face
}

// Family returns the font family name.
func (f *gotextFace) Family() string {
	return f.face.Describe().Family
}

// Rasterize implements Face.Rasterize.
func (f *gotextFace) Rasterize(r rune, px float64) (Glyph, error) {
	if err := checkSize(px); err != nil {
		return Glyph{}, err
	}

	gid, _ := f.face.NominalGlyph(r) // missing runes map to .notdef (0)
	scale := float32(px) / float32(f.face.Upem())

	g := Glyph{
		Metrics: Metrics{
			AdvanceWidth: float64(f.face.HorizontalAdvance(gid) * scale),
		},
	}

	segments, err := f.outline(gid)
	if err != nil {
		return Glyph{}, fmt.Errorf("%w: %q: %v", ErrNoGlyph, r, err)
	}
	if len(segments) == 0 {
		return g, nil
	}

	// Control box in pixels, Y down, as the ximage and freetype backends
	// compute it.
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for i := range segments {
		for _, p := range segments[i].ArgsSlice() {
			x, y := p.X*scale, -p.Y*scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	dr := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	if dr.Empty() {
		return g, nil
	}

	w, h := dr.Dx(), dr.Dy()
	ox, oy := float32(dr.Min.X), float32(dr.Min.Y)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return p.X*scale - ox, -p.Y*scale - oy
	}

	z := vector.NewRasterizer(w, h)
	open := false
	for _, s := range segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	g.Width, g.Height = w, h
	g.XMin = dr.Min.X
	g.YMin = -dr.Max.Y
	g.Bitmap = dst.Pix
	return g, nil
}

// outline returns the outline segments of gid in font units, Y up.
func (f *gotextFace) outline(gid font.GID) ([]ot.Segment, error) {
	switch data := f.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		return data.Segments, nil
	case font.GlyphBitmap:
		if data.Outline != nil {
			return data.Outline.Segments, nil
		}
		return nil, fmt.Errorf("bitmap glyph %d has no outline", gid)
	case font.GlyphSVG:
		return data.Outline.Segments, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported glyph data %T for glyph %d", data, gid)
	}
}
