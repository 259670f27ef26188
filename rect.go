package glyphatlas

import "fmt"

// Rect is an axis-aligned rectangle in canvas pixel coordinates.
// The origin is the top-left corner; Y grows down.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Vec2 is an integer 2D vector used for glyph bearings and advances.
type Vec2 struct {
	X, Y int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width*Height, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Grow expands the rectangle by d pixels on every side (shrinks for negative d).
func (r Rect) Grow(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Within reports whether r lies entirely inside a width x height canvas.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.MaxX() <= width && r.MaxY() <= height
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
