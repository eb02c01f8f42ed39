package life

import "math"

// Chunk is a rectangular slice of the grid handled by one job per
// generation. Edge chunks are clipped to the grid, so W or H may be zero
// when the grid is narrower than the chunk layout.
type Chunk struct {
	Index int
	X, Y  int
	W, H  int
}

// Empty reports whether the chunk covers no cells.
func (c Chunk) Empty() bool { return c.W <= 0 || c.H <= 0 }

// PerSide returns the number of chunks along each axis for workers jobs.
func PerSide(workers int) int {
	if workers <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(workers))))
}

// squareRoot returns the largest r with r*r <= n.
func squareRoot(n int) int {
	if n < 1 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// SquareWorkers coerces n down to the largest perfect square, keeping it at
// least 1 for positive n.
func SquareWorkers(n int) int {
	r := squareRoot(n)
	return r * r
}

// ChunkAt computes the chunk with the given index in a perSide*perSide
// layout over a w*h grid.
func ChunkAt(index, perSide, w, h int) Chunk {
	cw := ceilDiv(w, perSide)
	ch := ceilDiv(h, perSide)
	x := (index % perSide) * cw
	y := (index / perSide) * ch
	return Chunk{Index: index, X: x, Y: y, W: clip(x, cw, w), H: clip(y, ch, h)}
}

// Partition returns all perSide*perSide chunks of a w*h grid in index order.
// Together they cover every cell exactly once.
func Partition(w, h, perSide int) []Chunk {
	if perSide < 1 {
		perSide = 1
	}
	chunks := make([]Chunk, perSide*perSide)
	for i := range chunks {
		chunks[i] = ChunkAt(i, perSide, w, h)
	}
	return chunks
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func clip(origin, extent, limit int) int {
	if origin >= limit {
		return 0
	}
	return min(origin+extent, limit) - origin
}
