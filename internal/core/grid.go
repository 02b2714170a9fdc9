package core

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrSize reports grid dimensions that cannot be allocated.
var ErrSize = errors.New("invalid grid size")

// Grid stores two row-major buffers of 0/1 cells. One slot is current, the
// other receives the next generation; Swap flips which is which.
type Grid struct {
	Rows, Cols int

	slots  [2][]uint8
	active atomic.Uint32
}

// CheckSize reports whether a rows x cols grid can be allocated.
func CheckSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSize, rows, cols)
	}
	if rows > math.MaxInt32/cols {
		return fmt.Errorf("%w: %dx%d overflows", ErrSize, rows, cols)
	}
	return nil
}

// NewGrid allocates a grid with both buffers cleared.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := CheckSize(rows, cols); err != nil {
		return nil, err
	}
	n := rows * cols
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		slots: [2][]uint8{make([]uint8, n), make([]uint8, n)},
	}, nil
}

// Wrap normalizes v into [0, n) so negative and overflowing coordinates land
// on the opposite edge.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Index returns the linear slice index for (row, col), wrapping both.
func (g *Grid) Index(row, col int) int {
	return Wrap(row, g.Rows)*g.Cols + Wrap(col, g.Cols)
}

// Current exposes the authoritative buffer. Callers must not write to it.
func (g *Grid) Current() []uint8 { return g.slots[g.active.Load()] }

func (g *Grid) next() []uint8 { return g.slots[1-g.active.Load()] }

// Cell reads the current state at (row, col).
func (g *Grid) Cell(row, col int) uint8 { return g.Current()[g.Index(row, col)] }

// Set marks (row, col) live in the current buffer. Only valid before workers
// start.
func (g *Grid) Set(row, col int) { g.Current()[g.Index(row, col)] = 1 }

// SetNext writes v into the next buffer at (row, col).
func (g *Grid) SetNext(row, col int, v uint8) { g.next()[row*g.Cols+col] = v }

// NeighborCount returns the number of live cells among the eight toroidal
// neighbours of (row, col) in the current buffer.
func (g *Grid) NeighborCount(row, col int) int {
	cur := g.Current()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := Wrap(row+dr, g.Rows) * g.Cols
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(cur[r+Wrap(col+dc, g.Cols)])
		}
	}
	return n
}

// Swap makes the next buffer current. It must only run while no worker is
// reading or writing either buffer.
func (g *Grid) Swap() { g.active.Store(1 - g.active.Load()) }

// Live counts the live cells in the current buffer.
func (g *Grid) Live() int {
	total := 0
	for _, c := range g.Current() {
		total += int(c)
	}
	return total
}

// Snapshot returns a copy of the current buffer.
func (g *Grid) Snapshot() []uint8 {
	return append([]uint8(nil), g.Current()...)
}
