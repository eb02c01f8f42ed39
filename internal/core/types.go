package core

import (
	"sort"
	"time"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the front-ends drive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Advance banks elapsed wall time and runs every generation that is due.
	Advance(elapsed time.Duration) int
	// Step runs exactly one generation regardless of pacing.
	Step()
	Generation() uint64
	// Draw writes one 4-byte color per cell into buf in row-major order.
	Draw(alive, dead [4]byte, buf []byte) error
	Close() error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
