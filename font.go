package glyphatlas

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/glyphatlas/glyph"
)

// Printable ASCII range stored for every font.
const (
	FirstChar = 32
	LastChar  = 126
	CharCount = LastChar - FirstChar + 1
)

// CharEntry locates one glyph in the atlas.
type CharEntry struct {
	// Offset is the bearing of the bitmap's bottom-left corner relative to
	// the glyph origin on the baseline, Y up.
	Offset Vec2

	// Advance is the cursor movement after drawing the glyph, truncated
	// toward zero.
	Advance Vec2

	// Rect is the glyph bitmap's placement in the atlas.
	Rect Rect
}

// Font holds the placed glyphs of one font at one pixel size.
type Font struct {
	// LineSize is the vertical span covered by the lowest extents of all
	// glyphs relative to FontSize.
	LineSize int

	// FontSize is the rasterization size in pixels per em.
	FontSize int

	// Entries holds one entry per code point FirstChar..LastChar,
	// indexed by code - FirstChar.
	Entries [CharCount]CharEntry
}

// Entry returns the entry for r, or false if r is outside the stored range.
func (f *Font) Entry(r rune) (CharEntry, bool) {
	if r < FirstChar || r > LastChar {
		return CharEntry{}, false
	}
	return f.Entries[r-FirstChar], true
}

// buildFont rasterizes every stored code point with face at size pixels and
// places the bitmaps on the canvas. On failure every tile placed so far is
// released and the canvas is left as it was.
func buildFont(c *Canvas, face glyph.Face, size int) (Font, error) {
	font := Font{FontSize: size}
	minY := math.MaxInt
	maxY := math.MinInt

	b := c.batch()
	for i := range CharCount {
		ch := rune(FirstChar + i)

		g, err := face.Rasterize(ch, float64(size))
		if err != nil {
			b.rollback()
			return Font{}, fmt.Errorf("glyphatlas: rasterize %q: %w", ch, err)
		}

		rect, err := b.place(g.Width, g.Height, g.Bitmap)
		if err != nil {
			b.rollback()
			return Font{}, fmt.Errorf("glyphatlas: place %q: %w", ch, err)
		}

		font.Entries[i] = CharEntry{
			Offset:  Vec2{X: g.XMin, Y: g.YMin},
			Advance: Vec2{X: int(g.AdvanceWidth), Y: int(g.AdvanceHeight)},
			Rect:    rect,
		}

		lowest := size - g.YMin - g.Height
		minY = min(minY, lowest)
		maxY = max(maxY, lowest)

		Logger().Debug("glyphatlas: glyph",
			slog.String("char", string(ch)),
			slog.Int("xmin", g.XMin), slog.Int("ymin", g.YMin),
			slog.Int("w", g.Width), slog.Int("h", g.Height))
	}

	font.LineSize = maxY - minY
	return font, nil
}
