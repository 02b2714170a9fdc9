package ui

import (
	"slices"
	"testing"

	"pgol/internal/core"
	"pgol/internal/partition"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{{Label: "Rows", Value: "8"}}},
		{Name: "Progress", Params: []core.Parameter{{Label: "Round", Value: "3"}, {Label: "Live cells", Value: "12"}}},
	}}
	want := []string{"World", "  Rows: 8", "", "Progress", "  Round: 3", "  Live cells: 12"}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestRegionRect(t *testing.T) {
	r := partition.Region{StartRow: 0, EndRow: 9, StartCol: 4, EndCol: 7}
	x, y, w, h := RegionRect(r, 3)
	if x != 12 || y != 0 || w != 12 || h != 30 {
		t.Fatalf("RegionRect = %v,%v %vx%v", x, y, w, h)
	}
}
