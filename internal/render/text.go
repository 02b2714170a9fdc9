package render

import (
	"bufio"
	"fmt"
	"io"

	"pgol/internal/engine"
	"pgol/internal/partition"
)

const clearScreen = "\x1b[H\x1b[2J"

// Text prints every generation as ASCII art. Only the leader writes.
type Text struct {
	w     *bufio.Writer
	clear bool
}

// NewText returns a Text output writing to w. When clear is set each frame
// starts by clearing the terminal.
func NewText(w io.Writer, clear bool) *Text {
	return &Text{w: bufio.NewWriter(w), clear: clear}
}

// PaintRegion does nothing; the leader prints the whole grid.
func (t *Text) PaintRegion(partition.Region, engine.Frame) {}

// Render prints the round number, the grid and the live count.
func (t *Text) Render(f engine.Frame) error {
	if t.clear {
		t.w.WriteString(clearScreen)
	}
	fmt.Fprintf(t.w, "Round: %d\n", f.Generation)
	g := f.Grid
	cur := g.Current()
	for r := 0; r < g.Rows; r++ {
		row := cur[r*g.Cols : (r+1)*g.Cols]
		for _, c := range row {
			if c == 1 {
				t.w.WriteString(" @")
			} else {
				t.w.WriteString(" .")
			}
		}
		t.w.WriteByte('\n')
	}
	fmt.Fprintf(t.w, "Live cells: %d\n\n", f.Live)
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

// Publish does nothing; Render already flushed the frame.
func (t *Text) Publish(engine.Frame) {}
