//go:build ebiten

package app

import (
	"errors"

	"pgol/internal/engine"
	"pgol/internal/render"
	"pgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GUI reports whether this build can open a window.
const GUI = true

const hudWidth = 200

// Game adapts a running engine and its surface to the ebiten.Game interface.
type Game struct {
	surface *render.Surface
	hud     *ui.HUD
	overlay *ui.Overlay

	img   *ebiten.Image
	buf   []byte
	w, h  int
	scale int

	done <-chan struct{}
}

// New constructs a Game showing s. done is closed once the engine returns.
func New(e *engine.Engine, s *render.Surface, scale int, done <-chan struct{}) *Game {
	if scale <= 0 {
		scale = 1
	}
	w, h := s.Size()
	return &Game{
		surface: s,
		hud:     ui.NewHUD(e, hudWidth),
		overlay: ui.NewOverlay(e.Regions(), scale),
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		w:       w,
		h:       h,
		scale:   scale,
		done:    done,
	}
}

func (g *Game) finished() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Update handles input and refreshes the HUD.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.overlay.Update()
	g.hud.Update(g.finished())
	return nil
}

// Draw renders the last published generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.CopyPixels(g.buf)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.w*g.scale, g.h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w*g.scale + hudWidth, g.h * g.scale
}

// Run opens the window and blocks until the operator closes it. It must be
// called from the main goroutine.
func Run(e *engine.Engine, s *render.Surface, scale int, done <-chan struct{}) error {
	game := New(e, s, scale, done)

	ebiten.SetWindowTitle("pgol")
	ebiten.SetWindowSize(game.w*game.scale+hudWidth, game.h*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
