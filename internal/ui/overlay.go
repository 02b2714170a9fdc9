//go:build ebiten

package ui

import (
	"image/color"

	"pgol/internal/partition"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines each worker's region on top of the grid. P toggles it.
type Overlay struct {
	regions []partition.Region
	scale   int
	show    bool
}

// NewOverlay constructs an overlay for the given partition.
func NewOverlay(regions []partition.Region, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{regions: regions, scale: scale, show: true}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.show = !o.show
	}
}

// Draw renders the region outlines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	for _, r := range o.regions {
		x, y, w, h := RegionRect(r, o.scale)
		vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 255, G: 255, B: 255, A: 160}, false)
	}
}
