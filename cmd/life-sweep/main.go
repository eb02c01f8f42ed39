package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"conway/internal/core"
	"conway/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	backing string
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("%s/%d", s.backing, s.workers)
}

type scenarioResult struct {
	scenario   scenario
	elapsed    time.Duration
	perStep    time.Duration
	population int
	matches    bool
}

func main() {
	width := flag.Int("w", 512, "grid width")
	height := flag.Int("h", 512, "grid height")
	steps := flag.Int("steps", 100, "generations to run per scenario")
	maxWorkers := flag.Int("workers-max", runtime.NumCPU(), "largest worker count to try")
	parallel := flag.Int("parallel", 1, "scenarios to run at once (timings are only comparable at 1)")
	seed := flag.Int64("seed", 42, "seed for the initial grid")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *steps <= 0 {
		log.Fatalf("w, h and steps must be positive")
	}

	var sets []scenario
	for _, backing := range []string{"array", "packed"} {
		for r := 1; r*r <= max(*maxWorkers, 1); r++ {
			sets = append(sets, scenario{backing: backing, workers: r * r})
		}
	}

	reference, err := runScenario(scenario{backing: "array", workers: 1}, *width, *height, *steps, *seed, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d scenarios (%dx%d, %d steps, seed %d)\n", len(sets), *width, *height, *steps, *seed)

	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(max(*parallel, 1))
	for i, s := range sets {
		g.Go(func() error {
			res, err := runScenario(s, *width, *height, *steps, *seed, reference.grid)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = res.scenarioResult
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	mismatches := 0
	for _, res := range results {
		status := "ok"
		if !res.matches {
			status = "MISMATCH"
			mismatches++
		}
		fmt.Printf("%-10s total=%-12s step=%-12s population=%-7d %s\n",
			res.scenario, res.elapsed.Round(time.Microsecond), res.perStep.Round(time.Microsecond), res.population, status)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].perStep < results[j].perStep })
	best := results[0]
	speedup := 1.0
	if best.perStep > 0 {
		speedup = float64(reference.perStep) / float64(best.perStep)
	}
	fmt.Printf("\nFastest: %s at %s per generation (%.1fx the single-worker array run)\n",
		best.scenario, best.perStep.Round(time.Microsecond), speedup)

	if mismatches > 0 {
		log.Fatalf("%d scenarios diverged from the single-worker result", mismatches)
	}
}

type run struct {
	scenarioResult
	grid core.Grid
}

func runScenario(s scenario, w, h, steps int, seed int64, want core.Grid) (run, error) {
	switch s.backing {
	case "array":
		return runWith[*core.ArrayGrid](s, core.NewArrayGrid, w, h, steps, seed, want)
	case "packed":
		return runWith[*core.PackedGrid](s, core.NewPackedGrid, w, h, steps, seed, want)
	default:
		return run{}, fmt.Errorf("unknown backing %q", s.backing)
	}
}

func runWith[G core.Grid](s scenario, build core.Constructor[G], w, h, steps int, seed int64, want core.Grid) (run, error) {
	sim, err := life.New(build(w, h), build, 60, s.workers, life.WithSeed(seed))
	if err != nil {
		return run{}, err
	}
	defer sim.Close()
	sim.Reset(seed)

	start := time.Now()
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	elapsed := time.Since(start)

	res := run{
		scenarioResult: scenarioResult{
			scenario:   s,
			elapsed:    elapsed,
			perStep:    elapsed / time.Duration(steps),
			population: sim.Population(),
			matches:    want == nil || core.Equal(sim.Grid(), want),
		},
		grid: sim.Grid(),
	}
	return res, nil
}
