package life

import "strconv"

// Config controls the Life simulation dimensions and pacing.
type Config struct {
	Width  int
	Height int

	// Workers is the requested worker count; it is rounded down to a
	// perfect square.
	Workers int
	// UPS is the number of generations per second.
	UPS int
	// Population is the number of random samples Reset marks alive.
	// Negative means half the cell count.
	Population int

	Seed    int64
	Verbose bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      128,
		Height:     64,
		Workers:    4,
		UPS:        15,
		Population: -1,
		Seed:       42,
	}
}

// CellsToPopulate resolves the Population setting against the grid size.
func (c Config) CellsToPopulate() int {
	if c.Population < 0 {
		return c.Width * c.Height / 2
	}
	return c.Population
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or are out of range are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["ups"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.UPS = parsed
		}
	}
	if v, ok := cfg["population"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Population = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["verbose"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Verbose = parsed
		}
	}
	return c
}
