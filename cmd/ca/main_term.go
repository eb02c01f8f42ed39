//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"conway/internal/app"
	"conway/internal/core"
	_ "conway/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

// Without the ebiten build tag the grid is drawn in the terminal. Build with
// `-tags ebiten` for the windowed front-end.
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := app.NewTerminal(sim, screen, cfg.FrameInterval(), cfg.Seed)
	if err := term.Run(ctx); err != nil {
		sim.Close()
		log.Fatal(err)
	}
}
