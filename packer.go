package glyphatlas

import "slices"

// Packer implements guillotine rectangle packing over a fixed-size canvas.
//
// The packer keeps an ordered list of free rectangles. Each allocation picks
// the free rectangle that leaves the least unused area (best-area-fit), with
// ties going to the lowest y and then the lowest x, places the tile in its
// top-left corner and cuts the remainder into a part to the right of the tile
// and a part below it.
//
// A single padding value is used both as the minimum distance to the canvas
// border and as the minimum gap between two tiles. Free space starts at
// (padding, padding) and every tile reserves padding extra pixels to its right
// and below it, so the reported rectangle never includes the padding.
//
// Given the same canvas size, padding and sequence of requests, the packer
// always returns the same rectangles.
//
// Packer is not safe for concurrent use.
type Packer struct {
	width   int    // Total width of the canvas
	height  int    // Total height of the canvas
	padding int    // Border and inter-tile padding
	free    []Rect // Free rectangles, in creation order

	// Tracking for utilization
	usedArea int
}

// packerState is a copy of the mutable packer state.
type packerState struct {
	free     []Rect
	usedArea int
}

// NewPacker creates a packer for a width x height canvas.
// Negative padding is treated as zero.
func NewPacker(width, height, padding int) *Packer {
	p := &Packer{
		width:   width,
		height:  height,
		padding: max(padding, 0),
		free:    make([]Rect, 0, 32),
	}
	p.Reset()
	return p
}

// Allocate finds space for a width x height tile.
//
// Zero-sized requests always succeed and return an empty rectangle at (0, 0)
// without consuming space. Negative sizes fail. Otherwise the returned
// rectangle is the tile's un-padded bounds, and ok is false if no free
// rectangle can hold the padded tile.
func (p *Packer) Allocate(width, height int) (r Rect, ok bool) {
	if width < 0 || height < 0 {
		return Rect{}, false
	}
	if width == 0 || height == 0 {
		return Rect{}, true
	}

	paddedW := width + p.padding
	paddedH := height + p.padding

	i := p.bestFit(paddedW, paddedH)
	if i < 0 {
		return Rect{}, false
	}

	node := p.free[i]
	p.free = slices.Delete(p.free, i, i+1)
	p.split(node, paddedW, paddedH)
	p.usedArea += width * height

	return Rect{X: node.X, Y: node.Y, Width: width, Height: height}, true
}

// bestFit returns the index of the free rectangle with the smallest leftover
// area that holds a paddedW x paddedH tile, or -1.
func (p *Packer) bestFit(paddedW, paddedH int) int {
	best := -1
	bestWaste := 0
	for i, f := range p.free {
		if f.Width < paddedW || f.Height < paddedH {
			continue
		}
		waste := f.Width*f.Height - paddedW*paddedH
		switch {
		case best < 0, waste < bestWaste:
			best, bestWaste = i, waste
		case waste == bestWaste && topLeftOf(f, p.free[best]):
			best = i
		}
	}
	return best
}

// topLeftOf orders rectangles by y, then x.
func topLeftOf(a, b Rect) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// split cuts node around a paddedW x paddedH tile placed at its top-left
// corner. The cut follows the shorter leftover axis: when the leftover width
// is not larger than the leftover height, the part below spans the full node
// width; otherwise the part to the right spans the full node height.
// Zero-area parts are dropped.
func (p *Packer) split(node Rect, paddedW, paddedH int) {
	leftoverW := node.Width - paddedW
	leftoverH := node.Height - paddedH

	var right, below Rect
	if leftoverW <= leftoverH {
		right = Rect{X: node.X + paddedW, Y: node.Y, Width: leftoverW, Height: paddedH}
		below = Rect{X: node.X, Y: node.Y + paddedH, Width: node.Width, Height: leftoverH}
	} else {
		right = Rect{X: node.X + paddedW, Y: node.Y, Width: leftoverW, Height: node.Height}
		below = Rect{X: node.X, Y: node.Y + paddedH, Width: paddedW, Height: leftoverH}
	}

	if !right.Empty() {
		p.free = append(p.free, right)
	}
	if !below.Empty() {
		p.free = append(p.free, below)
	}
}

// CanFit reports whether a width x height tile would be accepted by Allocate.
// This is a quick check without actually allocating.
func (p *Packer) CanFit(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	if width == 0 || height == 0 {
		return true
	}
	return p.bestFit(width+p.padding, height+p.padding) >= 0
}

// Reset clears all allocations, allowing the packer to be reused.
func (p *Packer) Reset() {
	p.free = p.free[:0] // Keep capacity
	p.usedArea = 0

	w := p.width - p.padding
	h := p.height - p.padding
	if w > 0 && h > 0 {
		p.free = append(p.free, Rect{X: p.padding, Y: p.padding, Width: w, Height: h})
	}
}

func (p *Packer) snapshot() packerState {
	return packerState{free: slices.Clone(p.free), usedArea: p.usedArea}
}

func (p *Packer) restore(s packerState) {
	p.free = s.free
	p.usedArea = s.usedArea
}

// Padding returns the border and inter-tile padding.
func (p *Packer) Padding() int {
	return p.padding
}

// Utilization returns the fraction of canvas area covered by tiles (0.0 to 1.0).
func (p *Packer) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.TotalArea())
}

// UsedArea returns the total area covered by allocated tiles, without padding.
func (p *Packer) UsedArea() int {
	return p.usedArea
}

// TotalArea returns the total area of the canvas.
func (p *Packer) TotalArea() int {
	return p.width * p.height
}

// FreeCount returns the number of free rectangles currently tracked.
func (p *Packer) FreeCount() int {
	return len(p.free)
}

// FreeRects returns a copy of the free rectangles in creation order.
func (p *Packer) FreeRects() []Rect {
	return slices.Clone(p.free)
}
