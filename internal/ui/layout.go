// Package ui draws the heads-up display and the partition overlay of the
// graphical build. The layout helpers here build without the ebiten tag.
package ui

import (
	"pgol/internal/core"
	"pgol/internal/partition"
)

// Lines flattens a parameter snapshot into HUD text, one group heading
// followed by indented "Label: value" lines.
func Lines(s core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// RegionRect converts a region into screen-space coordinates at the given
// pixel scale.
func RegionRect(r partition.Region, scale int) (x, y, w, h float32) {
	s := float32(scale)
	return float32(r.StartCol) * s, float32(r.StartRow) * s, float32(r.Cols()) * s, float32(r.Rows()) * s
}
