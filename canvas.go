package glyphatlas

import "log/slog"

// Canvas owns the single-channel pixel buffer of an atlas and places tiles
// into it using a Packer.
//
// Pixels are stored row-major, one byte per pixel, and start out as 0.
// A tile is only ever written inside the rectangle granted to it.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pixels []byte
	packer *Packer
}

// NewCanvas creates a zeroed width x height canvas.
func NewCanvas(width, height, padding int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]byte, width*height),
		packer: NewPacker(width, height, padding),
	}
}

// PlaceTile allocates space for a width x height tile and copies pixels into
// it. pixels must hold exactly width*height bytes, row-major.
//
// Zero-sized tiles return an empty rectangle and cost no space. A non-empty
// tile that does not fit fails with *OverflowError and leaves the canvas
// untouched.
func (c *Canvas) PlaceTile(width, height int, pixels []byte) (Rect, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return Rect{}, &TileError{Width: width, Height: height, Len: len(pixels)}
	}

	r, ok := c.packer.Allocate(width, height)
	if !ok {
		if width*height > 0 {
			return Rect{}, &OverflowError{Width: c.width, Height: c.height, TileWidth: width, TileHeight: height}
		}
		return Rect{}, nil
	}
	if r.Empty() {
		return r, nil
	}

	c.blit(r, pixels)
	Logger().Debug("glyphatlas: tile placed",
		slog.Int("x", r.X), slog.Int("y", r.Y),
		slog.Int("w", r.Width), slog.Int("h", r.Height))
	return r, nil
}

// blit copies src row by row into r. r must lie inside the canvas.
func (c *Canvas) blit(r Rect, src []byte) {
	for y := range r.Height {
		dst := (r.Y+y)*c.width + r.X
		copy(c.pixels[dst:dst+r.Width], src[y*r.Width:(y+1)*r.Width])
	}
}

// erase zeroes r.
func (c *Canvas) erase(r Rect) {
	for y := range r.Height {
		row := (r.Y+y)*c.width + r.X
		clear(c.pixels[row : row+r.Width])
	}
}

// Region returns a copy of the pixels inside r, row-major.
func (c *Canvas) Region(r Rect) ([]byte, error) {
	if r.Width < 0 || r.Height < 0 || !r.Within(c.width, c.height) {
		return nil, ErrRegionOutOfBounds
	}
	out := make([]byte, 0, r.Area())
	for y := range r.Height {
		row := (r.Y+y)*c.width + r.X
		out = append(out, c.pixels[row:row+r.Width]...)
	}
	return out, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels returns the underlying pixel buffer. The slice is shared with the
// canvas and must not be modified.
func (c *Canvas) Pixels() []byte { return c.pixels }

// Packer returns the packer that tracks the canvas free space.
func (c *Canvas) Packer() *Packer { return c.packer }

// tileBatch records the tiles placed by one multi-tile addition so that the
// whole addition can be undone.
type tileBatch struct {
	canvas *Canvas
	state  packerState
	placed []Rect
}

// batch starts recording tile placements.
func (c *Canvas) batch() *tileBatch {
	return &tileBatch{canvas: c, state: c.packer.snapshot()}
}

func (b *tileBatch) place(width, height int, pixels []byte) (Rect, error) {
	r, err := b.canvas.PlaceTile(width, height, pixels)
	if err != nil {
		return Rect{}, err
	}
	if !r.Empty() {
		b.placed = append(b.placed, r)
	}
	return r, nil
}

// rollback zeroes every tile placed by the batch and restores the packer.
// Free space is never written, so zero is the value those pixels held.
func (b *tileBatch) rollback() {
	for _, r := range b.placed {
		b.canvas.erase(r)
	}
	b.canvas.packer.restore(b.state)
	b.placed = nil
}
