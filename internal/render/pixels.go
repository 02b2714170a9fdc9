package render

import (
	"image/color"

	"pgol/internal/partition"
)

// LiveColor is the colour of a live cell on every surface.
var LiveColor = color.RGBA{A: 255}

// workerPalette colours dead cells by the worker that owns them, so the
// partition is visible while the simulation runs.
var workerPalette = []color.RGBA{
	{R: 230, G: 70, B: 70, A: 255},
	{R: 70, G: 170, B: 90, A: 255},
	{R: 70, G: 110, B: 220, A: 255},
	{R: 235, G: 190, B: 60, A: 255},
	{R: 160, G: 90, B: 200, A: 255},
	{R: 60, G: 190, B: 200, A: 255},
	{R: 240, G: 130, B: 40, A: 255},
	{R: 200, G: 200, B: 200, A: 255},
}

// WorkerColor returns the dead-cell colour for worker id.
func WorkerColor(id int) color.RGBA {
	return workerPalette[id%len(workerPalette)]
}

// fillRegionRGBA converts the cells of r into RGBA pixels in buf. buf and
// cells share the same row-major layout with cols cells per row; nothing
// outside r is touched.
func fillRegionRGBA(buf []byte, cells []uint8, cols int, r partition.Region, on, off color.RGBA) {
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			i := row*cols + col
			base := i * 4
			c := off
			if cells[i] != 0 {
				c = on
			}
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
