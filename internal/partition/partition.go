// Package partition assigns each worker a fixed, contiguous band of the grid.
package partition

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWorkers reports a worker count outside [1, min(rows, cols)].
	ErrWorkers = errors.New("invalid worker count")
	// ErrMode reports an unknown partition mode.
	ErrMode = errors.New("invalid partition mode")
	// ErrCover reports regions that overlap or leave cells unowned.
	ErrCover = errors.New("regions do not cover the grid exactly")
)

// Mode selects the axis that is split between workers.
type Mode int

const (
	// ByRow gives every worker a band of whole rows.
	ByRow Mode = iota
	// ByColumn gives every worker a band of whole columns.
	ByColumn
)

func (m Mode) String() string {
	switch m {
	case ByRow:
		return "row"
	case ByColumn:
		return "column"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "row"/"rows"/"0" and "column"/"col"/"columns"/"1".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "rows", "0":
		return ByRow, nil
	case "column", "columns", "col", "cols", "1":
		return ByColumn, nil
	}
	return 0, fmt.Errorf("%w %q", ErrMode, s)
}

// Region is an inclusive rectangle of cells owned by one worker.
type Region struct {
	Worker   int
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// Rows reports the number of rows in the region.
func (r Region) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cols reports the number of columns in the region.
func (r Region) Cols() int { return r.EndCol - r.StartCol + 1 }

// Cells reports the number of cells in the region.
func (r Region) Cells() int { return r.Rows() * r.Cols() }

// Contains reports whether (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// String renders the bounds the way the startup diagnostics print them.
func (r Region) String() string {
	return fmt.Sprintf("tid %d: rows: %d:%d (%d) cols %d:%d (%d)",
		r.Worker, r.StartRow, r.EndRow, r.Rows(), r.StartCol, r.EndCol, r.Cols())
}

// CheckWorkers validates 1 <= workers <= min(rows, cols).
func CheckWorkers(rows, cols, workers int) error {
	if workers < 1 || workers > rows || workers > cols {
		return fmt.Errorf("%w %d: must be between 1 and min(%d, %d)", ErrWorkers, workers, rows, cols)
	}
	return nil
}

// band returns the first and last index of worker id's share of an axis.
func band(length, workers, id int) (int, int) {
	base, rem := length/workers, length%workers
	start := id*base + min(id, rem)
	size := base
	if id < rem {
		size++
	}
	return start, start + size - 1
}

// Compute returns the region owned by worker id.
func Compute(rows, cols, workers int, mode Mode, id int) (Region, error) {
	if err := CheckWorkers(rows, cols, workers); err != nil {
		return Region{}, err
	}
	if id < 0 || id >= workers {
		return Region{}, fmt.Errorf("worker id %d out of range [0, %d)", id, workers)
	}
	r := Region{Worker: id, EndRow: rows - 1, EndCol: cols - 1}
	switch mode {
	case ByRow:
		r.StartRow, r.EndRow = band(rows, workers, id)
	case ByColumn:
		r.StartCol, r.EndCol = band(cols, workers, id)
	default:
		return Region{}, fmt.Errorf("%w %d", ErrMode, int(mode))
	}
	return r, nil
}

// All returns the regions for every worker in id order.
func All(rows, cols, workers int, mode Mode) ([]Region, error) {
	if err := CheckWorkers(rows, cols, workers); err != nil {
		return nil, err
	}
	regions := make([]Region, workers)
	for id := range regions {
		r, err := Compute(rows, cols, workers, mode, id)
		if err != nil {
			return nil, err
		}
		regions[id] = r
	}
	return regions, nil
}

// Validate checks that regions lie inside the grid, never overlap and
// together cover every cell.
func Validate(rows, cols int, regions []Region) error {
	owner := make([]int, rows*cols)
	for i := range owner {
		owner[i] = -1
	}
	for _, r := range regions {
		if r.StartRow < 0 || r.StartCol < 0 || r.EndRow >= rows || r.EndCol >= cols ||
			r.StartRow > r.EndRow || r.StartCol > r.EndCol {
			return fmt.Errorf("%w: region %v out of bounds for %dx%d", ErrCover, r, rows, cols)
		}
		for row := r.StartRow; row <= r.EndRow; row++ {
			for col := r.StartCol; col <= r.EndCol; col++ {
				idx := row*cols + col
				if owner[idx] != -1 {
					return fmt.Errorf("%w: cell (%d,%d) owned by workers %d and %d",
						ErrCover, row, col, owner[idx], r.Worker)
				}
				owner[idx] = r.Worker
			}
		}
	}
	for idx, w := range owner {
		if w == -1 {
			return fmt.Errorf("%w: cell (%d,%d) has no owner", ErrCover, idx/cols, idx%cols)
		}
	}
	return nil
}
