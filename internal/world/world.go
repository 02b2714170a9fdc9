// Package world loads initial Game of Life configurations.
//
// The text format is a whitespace-separated list of integers:
//
//	rows cols iterations count
//	row col
//	...
//
// with exactly count row/col pairs following the header.
package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"pgol/internal/core"
	pcore "pgol/pkg/core"
)

// ErrFormat reports a malformed world description.
var ErrFormat = errors.New("malformed world")

// World is an initial configuration: grid size, generation count and the
// cells that start live.
type World struct {
	Rows       int
	Cols       int
	Iterations int
	Live       []core.Coord
}

// Load reads a world file from path.
func Load(path string) (World, error) {
	f, err := os.Open(path)
	if err != nil {
		return World{}, fmt.Errorf("open world: %w", err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return World{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Parse decodes the text format from r.
func Parse(r io.Reader) (World, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(field string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrFormat, field)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, field, sc.Text())
		}
		return v, nil
	}

	var w World
	var count int
	for _, h := range []struct {
		name string
		dst  *int
	}{
		{"rows", &w.Rows},
		{"cols", &w.Cols},
		{"iterations", &w.Iterations},
		{"live cell count", &count},
	} {
		v, err := next(h.name)
		if err != nil {
			return World{}, err
		}
		*h.dst = v
	}
	if err := w.checkHeader(count); err != nil {
		return World{}, err
	}

	w.Live = make([]core.Coord, 0, count)
	for i := 0; i < count; i++ {
		row, err := next(fmt.Sprintf("row of live cell %d", i))
		if err != nil {
			return World{}, err
		}
		col, err := next(fmt.Sprintf("col of live cell %d", i))
		if err != nil {
			return World{}, err
		}
		if row < 0 || row >= w.Rows || col < 0 || col >= w.Cols {
			return World{}, fmt.Errorf("%w: live cell %d at (%d,%d) outside %dx%d grid",
				ErrFormat, i, row, col, w.Rows, w.Cols)
		}
		w.Live = append(w.Live, core.Coord{Row: row, Col: col})
	}
	return w, nil
}

func (w World) checkHeader(count int) error {
	if err := core.CheckSize(w.Rows, w.Cols); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if w.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d", ErrFormat, w.Iterations)
	}
	if count < 0 || count > w.Rows*w.Cols {
		return fmt.Errorf("%w: live cell count %d for %dx%d grid", ErrFormat, count, w.Rows, w.Cols)
	}
	return nil
}

// Random builds a rows x cols world where each cell starts live with
// probability density. The same seed always yields the same world.
func Random(rows, cols, iterations int, density float64, seed int64) (World, error) {
	w := World{Rows: rows, Cols: cols, Iterations: iterations}
	if err := w.checkHeader(0); err != nil {
		return World{}, err
	}
	if density < 0 || density > 1 {
		return World{}, fmt.Errorf("%w: density %g outside [0, 1]", ErrFormat, density)
	}
	cells := make([]uint8, rows*cols)
	pcore.NewRNG(seed).FillDensity(cells, density)
	for i, c := range cells {
		if c == 1 {
			w.Live = append(w.Live, core.Coord{Row: i / cols, Col: i % cols})
		}
	}
	return w, nil
}

// Grid allocates a grid of the world's size with its live cells set.
func (w World) Grid() (*core.Grid, error) {
	g, err := core.NewGrid(w.Rows, w.Cols)
	if err != nil {
		return nil, err
	}
	for _, c := range w.Live {
		g.Set(c.Row, c.Col)
	}
	return g, nil
}

// Encode writes w in the format Parse reads.
func (w World) Encode(out io.Writer) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "%d\n%d\n%d\n%d\n", w.Rows, w.Cols, w.Iterations, len(w.Live))
	for _, c := range w.Live {
		fmt.Fprintf(bw, "%d %d\n", c.Row, c.Col)
	}
	return bw.Flush()
}
