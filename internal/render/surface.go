package render

import (
	"sync"

	"pgol/internal/engine"
	"pgol/internal/partition"
)

// Surface is the shared image buffer behind the graphical mode. Workers paint
// their own regions into the back buffer without locking; the leader copies it
// to the front buffer on Publish, and a display reads the front buffer.
type Surface struct {
	rows, cols int
	back       []byte

	mu    sync.Mutex
	front []byte
	gen   int
	live  int
}

// NewSurface allocates RGBA buffers for a rows x cols grid.
func NewSurface(rows, cols int) *Surface {
	n := 4 * rows * cols
	return &Surface{rows: rows, cols: cols, back: make([]byte, n), front: make([]byte, n)}
}

// Size returns the surface dimensions in pixels, width first.
func (s *Surface) Size() (w, h int) { return s.cols, s.rows }

// PaintRegion colours r: live cells black, dead cells by worker.
func (s *Surface) PaintRegion(r partition.Region, f engine.Frame) {
	fillRegionRGBA(s.back, f.Grid.Current(), s.cols, r, LiveColor, WorkerColor(r.Worker))
}

// Render does nothing; the surface is displayed by its reader.
func (s *Surface) Render(engine.Frame) error { return nil }

// Publish makes the painted frame visible to CopyPixels.
func (s *Surface) Publish(f engine.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.front, s.back)
	s.gen = f.Generation
	s.live = f.Live
}

// CopyPixels copies the last published frame into dst, which must hold
// 4*w*h bytes, and reports its generation and live count.
func (s *Surface) CopyPixels(dst []byte) (generation, live int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.front)
	return s.gen, s.live
}
