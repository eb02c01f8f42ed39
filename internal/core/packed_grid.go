package core

import (
	"iter"
	"math/bits"
)

// PackedGrid stores one bit per cell, 64 cells per word, row-major.
type PackedGrid struct {
	w, h  int
	words []uint64
}

// NewPackedGrid allocates an all-Dead packed grid.
func NewPackedGrid(w, h int) *PackedGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &PackedGrid{w: w, h: h, words: make([]uint64, (w*h+63)/64)}
}

func (g *PackedGrid) Size() (int, int) { return g.w, g.h }

func (g *PackedGrid) At(x, y int) (CellState, bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Dead, false
	}
	i := y*g.w + x
	return CellState(g.words[i>>6] >> (i & 63) & 1), true
}

func (g *PackedGrid) WrappedAt(x, y int) CellState {
	x, y = Wrap(x, y, g.w, g.h)
	s, ok := g.At(x, y)
	if !ok {
		return Dead
	}
	return s
}

func (g *PackedGrid) Set(x, y int, state CellState) CellState {
	prev, ok := g.At(x, y)
	if !ok {
		boundsPanic(x, y, g.w, g.h)
	}
	i := y*g.w + x
	mask := uint64(1) << (i & 63)
	if state == Alive {
		g.words[i>>6] |= mask
	} else {
		g.words[i>>6] &^= mask
	}
	return prev
}

func (g *PackedGrid) All() iter.Seq[Cell] { return cells(g) }

// Count returns the number of live cells without walking every cell.
func (g *PackedGrid) Count() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}
