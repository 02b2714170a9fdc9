// Command gol-sweep runs one world across worker counts and both partition
// modes, checks every run against the sequential stepper and prints timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"sort"
	"sync"
	"time"

	"pgol/internal/engine"
	"pgol/internal/partition"
	"pgol/internal/world"
	"pgol/pkg/life"
)

type scenario struct {
	mode    partition.Mode
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("%-6s workers=%-3d", s.mode, s.workers)
}

type scenarioResult struct {
	scenario
	elapsed time.Duration
	live    int
	match   bool
	err     error
}

func main() {
	path := flag.String("world", "", "world file (random world when empty)")
	rows := flag.Int("rows", 256, "rows of the random world")
	cols := flag.Int("cols", 256, "columns of the random world")
	iters := flag.Int("iters", 200, "generations of the random world")
	density := flag.Float64("random", 0.3, "live-cell density of the random world")
	seed := flag.Int64("seed", 1337, "seed of the random world")
	maxWorkers := flag.Int("max-workers", 16, "largest worker count to try")
	parallel := flag.Int("parallel", 1, "scenarios to run at once")
	save := flag.String("save", "", "write the swept world to this file so a run can be replayed with -world")
	flag.Parse()

	var (
		w   world.World
		err error
	)
	if *path != "" {
		w, err = world.Load(*path)
	} else {
		w, err = world.Random(*rows, *cols, *iters, *density, *seed)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *save != "" {
		if err := saveWorld(*save, w); err != nil {
			log.Fatal(err)
		}
	}

	ref, err := w.Grid()
	if err != nil {
		log.Fatal(err)
	}
	start := time.Now()
	wantLive := life.New(ref).Run(w.Iterations)
	want := ref.Snapshot()
	fmt.Printf("Sequential reference: %d live after %d rounds in %s\n",
		wantLive, w.Iterations, time.Since(start).Round(time.Millisecond))

	limit := min(*maxWorkers, w.Rows, w.Cols)
	var sets []scenario
	for _, mode := range []partition.Mode{partition.ByRow, partition.ByColumn} {
		for n := 1; n <= limit; n *= 2 {
			sets = append(sets, scenario{mode: mode, workers: n})
		}
	}

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*parallel, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(w, s, want, wantLive)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	var all []scenarioResult
	failed := false
	for res := range results {
		all = append(all, res)
		if res.err != nil || !res.match {
			failed = true
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].mode != all[j].mode {
			return all[i].mode < all[j].mode
		}
		return all[i].workers < all[j].workers
	})
	for _, res := range all {
		switch {
		case res.err != nil:
			fmt.Printf("%s error: %v\n", res.scenario, res.err)
		case !res.match:
			fmt.Printf("%s MISMATCH live=%d want=%d\n", res.scenario, res.live, wantLive)
		default:
			fmt.Printf("%s %10s live=%d\n", res.scenario, res.elapsed.Round(time.Microsecond), res.live)
		}
	}
	if failed {
		log.Fatal("some scenarios disagree with the sequential reference")
	}
}

func saveWorld(path string, w world.World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	if err := w.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("save world: %w", err)
	}
	return f.Close()
}

func runScenario(w world.World, s scenario, want []uint8, wantLive int) scenarioResult {
	out := scenarioResult{scenario: s}
	g, err := w.Grid()
	if err != nil {
		out.err = err
		return out
	}
	eng, err := engine.New(g, engine.Config{Workers: s.workers, Mode: s.mode, Iterations: w.Iterations})
	if err != nil {
		out.err = err
		return out
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		out.err = err
		return out
	}
	out.elapsed = res.Elapsed
	out.live = res.Live
	out.match = res.Live == wantLive && slices.Equal(g.Snapshot(), want)
	return out
}
