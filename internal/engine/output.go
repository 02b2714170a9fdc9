package engine

import (
	"pgol/internal/core"
	"pgol/internal/partition"
)

// Frame is the read-only view of a completed generation handed to outputs.
type Frame struct {
	// Generation counts completed generations, starting at 1.
	Generation int
	// Grid's current buffer holds the completed generation.
	Grid *core.Grid
	// Live is the aggregated census for the generation.
	Live int
}

// Output receives every completed generation. Calls are sequenced by the
// engine's barriers:
//
//   - PaintRegion runs on every worker, for that worker's region only, between
//     the aggregation and render barriers. Implementations may write shared
//     buffers without locking as long as they only touch cells of r.
//   - Render runs on the leader only, in the same phase as PaintRegion.
//   - Publish runs on the leader only, after the render barrier, so every
//     PaintRegion call for the frame has returned. No PaintRegion call for the
//     next frame starts before Publish returns.
type Output interface {
	PaintRegion(r partition.Region, f Frame)
	Render(f Frame) error
	Publish(f Frame)
}

// Pacer slows animated runs down. Wait is called by the leader once per
// generation before the render barrier.
type Pacer interface {
	Wait()
}

type discard struct{}

func (discard) PaintRegion(partition.Region, Frame) {}
func (discard) Render(Frame) error                  { return nil }
func (discard) Publish(Frame)                       {}

// Discard is an Output that ignores every frame.
var Discard Output = discard{}
