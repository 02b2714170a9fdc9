//go:build !ebiten

package app

import (
	"errors"

	"pgol/internal/engine"
	"pgol/internal/render"
)

// GUI reports whether this build can open a window.
const GUI = false

// Run always fails: the window needs the 'ebiten' build tag.
func Run(*engine.Engine, *render.Surface, int, <-chan struct{}) error {
	return errors.New("app.Run requires building with the 'ebiten' tag")
}
