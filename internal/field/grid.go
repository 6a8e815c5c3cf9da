// Package field holds the bounded coordinate space the ants move in and the
// pheromone grid laid over it.
package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("field: invalid dimensions")

// Grid stores one Kind per integer field coordinate in row-major order.
// Cells are overwritten in place; the last writer wins.
type Grid struct {
	w, h int
	data []uint8
}

// New allocates a w*h grid with every cell set to None.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice for renderers. Values are Kind bytes.
// Callers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Mark overwrites the cell at (x, y). The coordinates must be in range;
// callers map positions through CellOf first. k must be a declared Kind.
func (g *Grid) Mark(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("field: mark (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	if !k.Valid() {
		panic(fmt.Sprintf("field: mark (%d,%d) with undeclared kind %d", x, y, k))
	}
	g.data[g.Index(x, y)] = uint8(k)
}

// Sense returns the marker at (x, y), or None when the cell is empty or
// outside the grid.
func (g *Grid) Sense(x, y int) Kind {
	if !g.InBounds(x, y) {
		return None
	}
	return Kind(g.data[g.Index(x, y)])
}

// Clamp limits (x, y) to [0, w-1] x [0, h-1].
func (g *Grid) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.w {
		x = g.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.h {
		y = g.h - 1
	}
	return x, y
}

// CellOf maps a field position to the cell containing it, clamped to the grid.
func (g *Grid) CellOf(x, y float64) (int, int) {
	return g.Clamp(Floor(x), Floor(y))
}

// Count returns the number of cells holding k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, v := range g.data {
		if Kind(v) == k {
			n++
		}
	}
	return n
}

// Marked returns the number of cells holding any trail.
func (g *Grid) Marked() int {
	return len(g.data) - g.Count(None)
}

// Clear resets every cell to None. Only used when a new run starts.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = uint8(None)
	}
}

// Floor converts a field coordinate to its integer cell coordinate. NaN maps
// to math.MinInt32 so it always falls outside the grid.
func Floor(v float64) int {
	if math.IsNaN(v) {
		return math.MinInt32
	}
	f := math.Floor(v)
	if f < math.MinInt32 {
		return math.MinInt32
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
