package core

import (
	"fmt"
	"iter"
)

// CellState is the binary state of a single cell.
type CellState uint8

const (
	// Dead is the zero value, so fresh grids start empty.
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is one element of a row-major grid walk.
type Cell struct {
	X, Y  int
	State CellState
}

// Grid is the capability the engine needs from a cell store. Implementations
// are only mutated while exclusively owned; once shared for reads they must
// not change.
type Grid interface {
	// Size returns the fixed width and height.
	Size() (int, int)
	// At returns the state at (x, y) and false when the point is outside the
	// grid. It never wraps.
	At(x, y int) (CellState, bool)
	// WrappedAt maps any coordinate onto the torus before reading.
	WrappedAt(x, y int) CellState
	// Set stores state at (x, y) and returns the previous value.
	Set(x, y int, state CellState) CellState
	// All yields every cell in row-major order, x varying fastest.
	All() iter.Seq[Cell]
}

// Constructor builds an all-Dead grid of the given size.
type Constructor[G Grid] func(w, h int) G

// Wrap applies toroidal wrapping to the provided coordinates.
func Wrap(x, y, w, h int) (int, int) {
	x = (x%w + w) % w
	y = (y%h + h) % h
	return x, y
}

// Population counts the live cells in g.
func Population(g Grid) int {
	if c, ok := g.(interface{ Count() int }); ok {
		return c.Count()
	}
	n := 0
	for c := range g.All() {
		if c.State == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether a and b have the same size and cell states.
func Equal(a, b Grid) bool {
	aw, ah := a.Size()
	bw, bh := b.Size()
	if aw != bw || ah != bh {
		return false
	}
	for c := range a.All() {
		if s, _ := b.At(c.X, c.Y); s != c.State {
			return false
		}
	}
	return true
}

func boundsPanic(x, y, w, h int) {
	panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrBoundsViolation, x, y, w, h))
}

func cells(g Grid) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		w, h := g.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s, _ := g.At(x, y)
				if !yield(Cell{X: x, Y: y, State: s}) {
					return
				}
			}
		}
	}
}

// ArrayGrid stores one CellState per cell in row-major order.
type ArrayGrid struct {
	W, H int
	data []CellState
}

// NewArrayGrid allocates an all-Dead grid with the given dimensions.
func NewArrayGrid(w, h int) *ArrayGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ArrayGrid{W: w, H: h, data: make([]CellState, w*h)}
}

// Size returns the grid dimensions.
func (g *ArrayGrid) Size() (int, int) { return g.W, g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g *ArrayGrid) Index(x, y int) int { return y*g.W + x }

func (g *ArrayGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y) if it lies inside the grid.
func (g *ArrayGrid) At(x, y int) (CellState, bool) {
	if !g.inBounds(x, y) {
		return Dead, false
	}
	return g.data[g.Index(x, y)], true
}

// WrappedAt reads the cell at (x, y) after toroidal wrapping.
func (g *ArrayGrid) WrappedAt(x, y int) CellState {
	x, y = Wrap(x, y, g.W, g.H)
	s, ok := g.At(x, y)
	if !ok {
		return Dead
	}
	return s
}

// Set swaps in state at (x, y). It panics outside the grid.
func (g *ArrayGrid) Set(x, y int, state CellState) CellState {
	if !g.inBounds(x, y) {
		boundsPanic(x, y, g.W, g.H)
	}
	idx := g.Index(x, y)
	prev := g.data[idx]
	g.data[idx] = state
	return prev
}

// All walks the grid in row-major order.
func (g *ArrayGrid) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, s := range g.data {
			if !yield(Cell{X: i % g.W, Y: i / g.W, State: s}) {
				return
			}
		}
	}
}

// Clear marks every cell Dead.
func (g *ArrayGrid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
