// Package life holds Conway's transition rule and a single-threaded stepper
// used as the reference the parallel engine is checked against.
package life

import "pgol/internal/core"

// NextState applies the B3/S23 rule: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func NextState(cur uint8, neighbors int) uint8 {
	if neighbors == 3 || (cur == 1 && neighbors == 2) {
		return 1
	}
	return 0
}

// Life advances a grid one generation at a time on the calling goroutine.
type Life struct {
	grid *core.Grid
	gen  int
}

// New returns a stepper over g. The grid's current buffer is the initial state.
func New(g *core.Grid) *Life {
	return &Life{grid: g}
}

// Grid returns the grid being stepped.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation reports how many steps have completed.
func (l *Life) Generation() int { return l.gen }

// Step advances the grid by one generation and returns the live count.
func (l *Life) Step() int {
	g := l.grid
	live := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := NextState(g.Cell(r, c), g.NeighborCount(r, c))
			g.SetNext(r, c, v)
			live += int(v)
		}
	}
	g.Swap()
	l.gen++
	return live
}

// Run steps n generations and returns the final live count.
func (l *Life) Run(n int) int {
	live := l.grid.Live()
	for i := 0; i < n; i++ {
		live = l.Step()
	}
	return live
}
