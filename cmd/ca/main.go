//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway/internal/app"
	"conway/internal/core"
	_ "conway/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}
	defer sim.Close()

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)

	ebiten.SetWindowTitle("Conway's Game of Life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		sim.Close()
		log.Fatal(err)
	}
}
