package world

import (
	"fmt"
	"sort"

	"pgol/internal/core"
)

// Pattern is a named arrangement of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []core.Coord
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Empty names and empty patterns are
// ignored.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds reports the pattern's height and width.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// Place returns a rows x cols world with the pattern's top-left corner at
// (row, col). Cells past the edges wrap around.
func (p Pattern) Place(rows, cols, iterations, row, col int) (World, error) {
	w := World{Rows: rows, Cols: cols, Iterations: iterations}
	if err := w.checkHeader(0); err != nil {
		return World{}, err
	}
	if h, wd := p.Bounds(); h > rows || wd > cols {
		return World{}, fmt.Errorf("%w: pattern %s is %dx%d, grid is %dx%d", ErrFormat, p.Name, h, wd, rows, cols)
	}
	for _, c := range p.Cells {
		w.Live = append(w.Live, core.Coord{
			Row: core.Wrap(row+c.Row, rows),
			Col: core.Wrap(col+c.Col, cols),
		})
	}
	return w, nil
}

// Centered places the pattern in the middle of a rows x cols grid.
func (p Pattern) Centered(rows, cols, iterations int) (World, error) {
	h, wd := p.Bounds()
	return p.Place(rows, cols, iterations, (rows-h)/2, (cols-wd)/2)
}

func cells(pairs ...int) []core.Coord {
	out := make([]core.Coord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, core.Coord{Row: pairs[i], Col: pairs[i+1]})
	}
	return out
}

func init() {
	Register(Pattern{Name: "block", Cells: cells(0, 0, 0, 1, 1, 0, 1, 1)})
	Register(Pattern{Name: "blinker", Cells: cells(0, 0, 0, 1, 0, 2)})
	Register(Pattern{Name: "beehive", Cells: cells(0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 2)})
	Register(Pattern{Name: "toad", Cells: cells(0, 1, 0, 2, 0, 3, 1, 0, 1, 1, 1, 2)})
	Register(Pattern{Name: "glider", Cells: cells(0, 1, 1, 2, 2, 0, 2, 1, 2, 2)})
	Register(Pattern{Name: "r-pentomino", Cells: cells(0, 1, 0, 2, 1, 0, 1, 1, 2, 1)})
}
