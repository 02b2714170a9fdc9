package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"pgol/internal/engine"
	"pgol/internal/partition"
)

// Terminal draws the grid in a tcell screen, two columns per cell, using the
// same colouring as Surface.
type Terminal struct {
	screen tcell.Screen
	cols   int
	styles []tcell.Style
}

// NewTerminal wraps an initialised screen for a rows x cols grid.
func NewTerminal(screen tcell.Screen, rows, cols int) *Terminal {
	screen.Clear()
	return &Terminal{screen: screen, cols: cols, styles: make([]tcell.Style, rows*cols)}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// PaintRegion records the style of every cell in r.
func (t *Terminal) PaintRegion(r partition.Region, f engine.Frame) {
	cur := f.Grid.Current()
	live, dead := styleFor(LiveColor), styleFor(WorkerColor(r.Worker))
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			i := row*t.cols + col
			t.styles[i] = dead
			if cur[i] != 0 {
				t.styles[i] = live
			}
		}
	}
}

// Render does nothing; the screen is updated on Publish.
func (t *Terminal) Render(engine.Frame) error { return nil }

// Publish pushes the painted frame and a status line to the screen.
func (t *Terminal) Publish(f engine.Frame) {
	for i, st := range t.styles {
		row, col := i/t.cols, i%t.cols
		t.screen.SetContent(2*col, row, ' ', nil, st)
		t.screen.SetContent(2*col+1, row, ' ', nil, st)
	}
	status := fmt.Sprintf("Round: %d  Live cells: %d  (q to quit)", f.Generation, f.Live)
	y := len(t.styles) / t.cols
	for x, r := range status {
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
}

// Listen polls screen events until the screen is finalised, calling quit when
// the operator presses q, Esc or Ctrl-C.
func (t *Terminal) Listen(quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
			quit()
		}
	}
}
