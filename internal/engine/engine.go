// Package engine runs a Game of Life grid across a fixed pool of workers that
// meet at three barriers per generation.
//
// Per generation every worker:
//
//  1. computes its region of the next buffer from the current buffer;
//  2. waits at the swap barrier, whose release swaps the buffers and resets
//     the live counter (worker 0 supplies that action);
//  3. adds its tally to the live counter;
//  4. waits at the aggregation barrier, after which the total is final;
//  5. paints its region (and worker 0 renders the frame);
//  6. waits at the render barrier before starting the next generation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"pgol/internal/barrier"
	"pgol/internal/core"
	"pgol/internal/partition"
)

// Config describes a run. The zero Output and Pacer mean no output and no
// pacing.
type Config struct {
	Workers    int
	Mode       partition.Mode
	Iterations int

	Output Output
	Pacer  Pacer

	// Diagnostics receives one line per worker describing its region, written
	// once before the workers start. Nil disables it.
	Diagnostics io.Writer
}

// Result summarizes a finished run.
type Result struct {
	Generations int
	Live        int
	Elapsed     time.Duration
}

// Engine owns the grid, the static partition and the shared counter for a
// single run.
type Engine struct {
	cfg     Config
	grid    *core.Grid
	regions []partition.Region
	live    LiveCounter

	progress atomic.Pointer[progress]
}

// progress is the generation and live count of one published frame, stored
// together so readers never pair a round with another round's census.
type progress struct {
	generation int
	live       int
}

// New validates cfg against the grid and computes every worker's region.
// All configuration errors surface here, before any worker starts.
func New(g *core.Grid, cfg Config) (*Engine, error) {
	if g == nil {
		return nil, errors.New("engine: nil grid")
	}
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("engine: negative iteration count %d", cfg.Iterations)
	}
	regions, err := partition.All(g.Rows, g.Cols, cfg.Workers, cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if err := partition.Validate(g.Rows, g.Cols, regions); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if cfg.Output == nil {
		cfg.Output = Discard
	}
	e := &Engine{cfg: cfg, grid: g, regions: regions}
	e.progress.Store(&progress{live: g.Live()})
	return e, nil
}

// Grid returns the grid the engine evolves.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Regions returns the static partition, indexed by worker id.
func (e *Engine) Regions() []partition.Region {
	return append([]partition.Region(nil), e.regions...)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Progress reports the last published generation and its live count. It is
// safe to call from any goroutine while Run is in progress.
func (e *Engine) Progress() (generation, live int) {
	p := e.progress.Load()
	return p.generation, p.live
}

// Run launches one goroutine per region and blocks until every generation
// completes, ctx is cancelled, or an output fails. Cancellation breaks the
// barrier so that all workers return together.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if w := e.cfg.Diagnostics; w != nil {
		for _, r := range e.regions {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return Result{}, fmt.Errorf("engine: write diagnostics: %w", err)
			}
		}
	}

	start := time.Now()
	b := barrier.New(len(e.regions))
	s := &shared{
		grid:    e.grid,
		live:    &e.live,
		barrier: b,
		out:     e.cfg.Output,
		pacer:   e.cfg.Pacer,
		publish: e.publish,
	}

	eg, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, b.Break)
	defer stop()

	for _, r := range e.regions {
		w := &worker{id: r.Worker, region: r, shared: s}
		eg.Go(func() error {
			return w.run(e.cfg.Iterations)
		})
	}

	err := eg.Wait()
	gen, live := e.Progress()
	res := Result{Generations: gen, Live: live, Elapsed: time.Since(start)}
	if err != nil {
		if errors.Is(err, barrier.ErrBroken) && ctx.Err() != nil {
			return res, ctx.Err()
		}
		return res, err
	}
	return res, nil
}

func (e *Engine) publish(f Frame) {
	e.progress.Store(&progress{generation: f.Generation, live: f.Live})
}
