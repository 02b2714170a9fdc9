package engine

import (
	"pgol/internal/barrier"
	"pgol/internal/core"
	"pgol/internal/partition"
	"pgol/pkg/life"
)

// shared is the state every worker holds a reference to. Only the live
// counter needs a lock: the grid buffers and output surfaces are partitioned
// by region.
type shared struct {
	grid    *core.Grid
	live    *LiveCounter
	barrier *barrier.Barrier
	out     Output
	pacer   Pacer
	publish func(Frame)
}

// worker is one long-lived participant. Every worker executes the same number
// of generations and the same barrier sequence.
type worker struct {
	id     int
	region partition.Region
	*shared

	local int
}

// leader reports whether this worker owns the global bookkeeping. It supplies
// the swap and counter reset, which run during the swap barrier's release on
// whichever goroutine arrives last, and it renders, paces and publishes on its
// own goroutine. It is the only difference between workers.
func (w *worker) leader() bool { return w.id == 0 }

func (w *worker) run(iterations int) error {
	for gen := 1; gen <= iterations; gen++ {
		w.compute()

		var swap func()
		if w.leader() {
			swap = w.swap
		}
		if err := w.barrier.Wait(swap); err != nil {
			return err
		}

		w.live.Add(w.local)
		if err := w.barrier.Wait(nil); err != nil {
			return err
		}

		f := Frame{Generation: gen, Grid: w.grid, Live: w.live.Value()}
		w.out.PaintRegion(w.region, f)
		if w.leader() {
			if err := w.out.Render(f); err != nil {
				return err
			}
			if w.pacer != nil {
				w.pacer.Wait()
			}
		}
		if err := w.barrier.Wait(nil); err != nil {
			return err
		}

		if w.leader() {
			w.out.Publish(f)
			w.publish(f)
		}
	}
	return nil
}

// compute writes the next generation of the worker's region and records how
// many of its cells are live. The current buffer is only read.
func (w *worker) compute() {
	g, r := w.grid, w.region
	live := 0
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			v := life.NextState(g.Cell(row, col), g.NeighborCount(row, col))
			g.SetNext(row, col, v)
			live += int(v)
		}
	}
	w.local = live
}

// swap runs inside the swap barrier's release, after every worker finished
// compute and before any adds to the counter.
func (w *worker) swap() {
	w.grid.Swap()
	w.live.Reset()
}
