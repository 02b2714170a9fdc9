//go:build ebiten

package ui

import (
	"image/color"

	"pgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the run's parameters and progress to the right of the grid.
type HUD struct {
	source parameterProvider
	width  int
	panel  *ebiten.Image
	lines  []string
}

// NewHUD constructs a HUD reading from source with the given panel width.
func NewHUD(source parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: source, width: width}
}

// Update refreshes the cached text. finished appends a closing hint once the
// run is over.
func (h *HUD) Update(finished bool) {
	if h == nil {
		return
	}
	h.lines = Lines(h.source.Parameters())
	if finished {
		h.lines = append(h.lines, "", "Done. q to quit")
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 3
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, 8, 16+i*lineHeight, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
