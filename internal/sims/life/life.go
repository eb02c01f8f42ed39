// Package life runs Conway's Game of Life on a torus, splitting each
// generation into square chunks computed on a worker pool.
package life

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync/atomic"
	"time"

	"conway/internal/core"
	"conway/internal/pool"
	"conway/internal/render"
	rng "conway/pkg/core"
)

// snapshot is a published generation. Its grid is never written once stored.
type snapshot[G core.Grid] struct {
	grid       G
	generation uint64
}

type chunkResult[G core.Grid] struct {
	index int
	grid  G
}

// Life is the simulation engine. Advance, Step, Populate and Reset must be
// called from a single goroutine; Draw, Generation and Population may be
// called from anywhere at any time.
type Life[G core.Grid] struct {
	name  string
	build core.Constructor[G]
	w, h  int

	pool    *pool.Pool
	workers int
	chunks  []Chunk
	pacer   *core.FixedStep
	ups     int

	current atomic.Pointer[snapshot[G]]

	rng        *rng.RNG
	seed       int64
	population int
	logger     *log.Logger
}

// Option customizes a Life engine.
type Option func(*options)

type options struct {
	name       string
	seed       int64
	population int
	logger     *log.Logger
}

// WithName sets the name reported by Name.
func WithName(name string) Option { return func(o *options) { o.name = name } }

// WithSeed seeds the RNG used by Populate.
func WithSeed(seed int64) Option { return func(o *options) { o.seed = seed } }

// WithPopulation sets how many random samples Reset marks alive.
func WithPopulation(n int) Option { return func(o *options) { o.population = n } }

// WithLogger routes engine diagnostics to l.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// New builds an engine around initial, which becomes generation 0 and is
// owned by the engine from then on. build allocates blank grids of the same
// backing. workers is rounded down to a perfect square.
func New[G core.Grid](initial G, build core.Constructor[G], ups, workers int, opts ...Option) (*Life[G], error) {
	o := options{name: "life", seed: 42, population: -1, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}
	if build == nil {
		return nil, fmt.Errorf("%w: nil grid constructor", core.ErrConfiguration)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be at least 1, got %d", core.ErrConfiguration, workers)
	}
	pacer, err := core.NewFixedStep(ups)
	if err != nil {
		return nil, err
	}

	w, h := initial.Size()
	perSide := squareRoot(workers)
	p, err := pool.New(perSide * perSide)
	if err != nil {
		return nil, err
	}

	population := o.population
	if population < 0 {
		population = w * h / 2
	}
	l := &Life[G]{
		name:       o.name,
		build:      build,
		w:          w,
		h:          h,
		pool:       p,
		workers:    perSide * perSide,
		chunks:     Partition(w, h, perSide),
		pacer:      pacer,
		ups:        ups,
		rng:        rng.NewRNG(o.seed),
		seed:       o.seed,
		population: population,
		logger:     o.logger,
	}
	l.current.Store(&snapshot[G]{grid: initial})
	l.logger.Printf("%s: %dx%d grid, %d workers requested, %d used (%dx%d chunks), %v per generation",
		l.name, w, h, workers, l.workers, perSide, perSide, pacer.Step())
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life[G]) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life[G]) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Workers returns the effective worker count.
func (l *Life[G]) Workers() int { return l.workers }

// Chunks returns the partition used for every generation.
func (l *Life[G]) Chunks() []Chunk {
	out := make([]Chunk, len(l.chunks))
	copy(out, l.chunks)
	return out
}

// ChunkRects returns the partition as rectangles in cell coordinates.
func (l *Life[G]) ChunkRects() []image.Rectangle {
	rects := make([]image.Rectangle, len(l.chunks))
	for i, c := range l.chunks {
		rects[i] = image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
	}
	return rects
}

// FrameTime returns the simulated duration of one generation.
func (l *Life[G]) FrameTime() time.Duration { return l.pacer.Step() }

// Waiting returns elapsed time banked but not yet spent on a generation.
func (l *Life[G]) Waiting() time.Duration { return l.pacer.Waiting() }

// Generation returns the number of the published generation.
func (l *Life[G]) Generation() uint64 { return l.current.Load().generation }

// Grid returns the published snapshot. Callers must treat it as read-only.
func (l *Life[G]) Grid() G { return l.current.Load().grid }

// Population counts live cells in the published snapshot.
func (l *Life[G]) Population() int { return core.Population(l.current.Load().grid) }

// SetUPS changes the generation rate. Banked time is kept.
func (l *Life[G]) SetUPS(ups int) error {
	if err := l.pacer.SetUPS(ups); err != nil {
		return err
	}
	l.ups = ups
	return nil
}

// Populate marks n uniformly sampled cells alive on the published grid.
// Samples are drawn with replacement, so fewer than n cells may change.
// It writes to a grid other goroutines may be reading, so it must not run
// concurrently with Draw, Advance or Step.
func (l *Life[G]) Populate(n int) {
	l.scatter(l.current.Load().grid, n)
}

func (l *Life[G]) scatter(g G, n int) {
	for i := 0; i < n; i++ {
		x, y := l.rng.Point(l.w, l.h)
		g.Set(x, y, core.Alive)
	}
}

// Reset publishes a fresh random generation 0 drawn from seed and drops any
// banked time.
func (l *Life[G]) Reset(seed int64) {
	l.seed = seed
	l.rng = rng.NewRNG(seed)
	l.pacer.Reset()
	g := l.build(l.w, l.h)
	l.scatter(g, l.population)
	l.current.Store(&snapshot[G]{grid: g})
}

// Draw writes alive or dead for every cell of the published generation into
// buf, 4 bytes per cell in row-major order.
func (l *Life[G]) Draw(alive, dead [4]byte, buf []byte) error {
	return render.FillCells(buf, l.current.Load().grid, alive, dead)
}

// Advance banks elapsed time and runs one generation per frame time banked.
// It returns the number of generations run, which may be zero.
func (l *Life[G]) Advance(elapsed time.Duration) int {
	l.pacer.Add(elapsed)
	n := 0
	for l.pacer.Consume() {
		l.Step()
		n++
	}
	return n
}

// Step computes and publishes the next generation. Every chunk job is queued
// before any result is awaited, and the new grid is published only after all
// of them have reported back.
func (l *Life[G]) Step() {
	prev := l.current.Load()
	results := make(chan chunkResult[G], len(l.chunks))
	for _, c := range l.chunks {
		err := l.pool.Submit(func() {
			results <- chunkResult[G]{index: c.Index, grid: nextChunk(prev.grid, c, l.build)}
		})
		if err != nil {
			panic(fmt.Errorf("generation %d chunk %d: %w", prev.generation+1, c.Index, err))
		}
	}

	parts := make([]chunkResult[G], 0, len(l.chunks))
	for range l.chunks {
		parts = append(parts, <-results)
	}

	next := l.build(l.w, l.h)
	for _, part := range parts {
		merge(next, part.grid, l.chunks[part.index])
	}
	l.current.Store(&snapshot[G]{grid: next, generation: prev.generation + 1})
}

// Close stops the worker pool. The published snapshot stays readable.
func (l *Life[G]) Close() error {
	err := l.pool.Close()
	l.logger.Printf("%s: stopped at generation %d", l.name, l.Generation())
	return err
}

var neighbourhood = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1}, {1, 1}, {1, 0},
	{1, -1}, {0, -1},
}

// nextChunk computes chunk c of the generation after src into a new grid
// sized to the chunk. Neighbour reads may fall anywhere on the torus.
func nextChunk[G core.Grid](src G, c Chunk, build core.Constructor[G]) G {
	var out G
	if c.Empty() {
		return out
	}
	out = build(c.W, c.H)
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			out.Set(x, y, nextState(src, c.X+x, c.Y+y))
		}
	}
	return out
}

func nextState(g core.Grid, x, y int) core.CellState {
	cell, ok := g.At(x, y)
	if !ok {
		w, h := g.Size()
		panic(fmt.Errorf("%w: updating (%d,%d) in %dx%d grid", core.ErrBoundsViolation, x, y, w, h))
	}
	alive := 0
	for _, d := range neighbourhood {
		if g.WrappedAt(x+d[0], y+d[1]) == core.Alive {
			alive++
		}
	}
	return Rule(cell, alive)
}

// Rule applies B3/S23: a live cell survives with 2 or 3 live neighbours and a
// dead cell is born with exactly 3.
func Rule(cell core.CellState, alive int) core.CellState {
	if (cell == core.Alive && (alive == 2 || alive == 3)) || (cell == core.Dead && alive == 3) {
		return core.Alive
	}
	return core.Dead
}

func merge[G core.Grid](dst, part G, c Chunk) {
	if c.Empty() {
		return
	}
	for cell := range part.All() {
		dst.Set(c.X+cell.X, c.Y+cell.Y, cell.State)
	}
}

func fromConfig[G core.Grid](name string, build core.Constructor[G], c Config) (*Life[G], error) {
	logger := log.New(io.Discard, "", 0)
	if c.Verbose {
		logger = log.Default()
	}
	l, err := New(build(c.Width, c.Height), build, c.UPS, c.Workers,
		WithName(name),
		WithSeed(c.Seed),
		WithPopulation(c.CellsToPopulate()),
		WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	l.Reset(c.Seed)
	return l, nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := fromConfig[*core.ArrayGrid]("life", core.NewArrayGrid, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
	core.Register("life-packed", func(cfg map[string]string) (core.Sim, error) {
		l, err := fromConfig[*core.PackedGrid]("life-packed", core.NewPackedGrid, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
