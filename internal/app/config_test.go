package app

import (
	"flag"
	"testing"
	"time"

	"conway/internal/sims/life"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-sim", "life-packed", "-w", "200", "-h", "100", "-workers", "10", "-ups", "30", "-seed", "5", "-hud"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "life-packed" || cfg.Width != 200 || cfg.Height != 100 || cfg.Workers != 10 || cfg.UPS != 30 || cfg.Seed != 5 || !cfg.HUD {
		t.Fatalf("parsed config = %+v", cfg)
	}
}

func TestSimOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Workers, cfg.UPS, cfg.Population, cfg.Seed = 50, 20, 16, 24, 300, 99
	got := life.FromMap(cfg.SimOptions())
	want := life.Config{Width: 50, Height: 20, Workers: 16, UPS: 24, Population: 300, Seed: 99}
	if got != want {
		t.Fatalf("FromMap(SimOptions()) = %+v, want %+v", got, want)
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := NewConfig()
	cfg.TPS = 50
	if d := cfg.FrameInterval(); d != 20*time.Millisecond {
		t.Fatalf("FrameInterval = %v", d)
	}
	cfg.TPS = 0
	if d := cfg.FrameInterval(); d != time.Second/60 {
		t.Fatalf("FrameInterval with TPS 0 = %v", d)
	}
}
