package app

import (
	"flag"
	"strconv"
	"time"

	"conway/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Width      int
	Height     int
	Workers    int
	UPS        int
	Population int
	Scale      int
	TPS        int
	Seed       int64
	HUD        bool
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:        "life",
		Width:      def.Width,
		Height:     def.Height,
		Workers:    def.Workers,
		UPS:        def.UPS,
		Population: def.Population,
		Scale:      6,
		TPS:        60,
		Seed:       def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, life-packed)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines (rounded down to a perfect square)")
	fs.IntVar(&c.UPS, "ups", c.UPS, "generations per second")
	fs.IntVar(&c.Population, "population", c.Population, "cells to seed alive on reset (-1 for half the grid)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the front-end")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel (window only)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log engine diagnostics")
}

// SimOptions converts the flags into the key/value form sim factories take.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":          strconv.Itoa(c.Width),
		"h":          strconv.Itoa(c.Height),
		"workers":    strconv.Itoa(c.Workers),
		"ups":        strconv.Itoa(c.UPS),
		"population": strconv.Itoa(c.Population),
		"seed":       strconv.FormatInt(c.Seed, 10),
		"verbose":    strconv.FormatBool(c.Verbose),
	}
}

// FrameInterval returns the front-end redraw period.
func (c *Config) FrameInterval() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}
