package core

import (
	"errors"
	"slices"
	"testing"
)

func TestWrap(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{11, 5, 1},
		{-1, 1, 0},
		{1, 1, 0},
	}
	for _, c := range cases {
		if got := Wrap(c.v, c.n); got != c.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", c.v, c.n, got, c.want)
		}
	}
}

func TestNewGridRejectsBadSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrSize) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrSize", dims[0], dims[1], err)
		}
	}
}

func TestNeighborCountWrapsCorners(t *testing.T) {
	g, err := NewGrid(6, 7)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0)

	for _, c := range [][2]int{{5, 6}, {5, 0}, {0, 6}, {1, 1}, {0, 1}, {1, 0}} {
		if n := g.NeighborCount(c[0], c[1]); n != 1 {
			t.Fatalf("cell (%d,%d) sees %d live neighbours, want 1", c[0], c[1], n)
		}
	}
	if n := g.NeighborCount(0, 0); n != 0 {
		t.Fatalf("cell must not count itself, got %d", n)
	}
	if n := g.NeighborCount(3, 3); n != 0 {
		t.Fatalf("distant cell sees %d neighbours", n)
	}
}

func TestNeighborCountSingleRow(t *testing.T) {
	g, err := NewGrid(1, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 2)

	// With one row the rows above and below wrap onto the same row, so each
	// horizontal neighbour is seen three times and the cell sees itself twice.
	want := []int{0, 3, 2, 3, 0}
	for col, w := range want {
		if got := g.NeighborCount(0, col); got != w {
			t.Fatalf("col %d: got %d neighbours, want %d", col, got, w)
		}
	}
}

func TestSwapFlipsBuffers(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0)
	g.SetNext(1, 1, 1)

	before := g.Snapshot()
	g.Swap()
	after := g.Snapshot()

	if !slices.Equal(before, []uint8{1, 0, 0, 0}) {
		t.Fatalf("unexpected current before swap: %v", before)
	}
	if !slices.Equal(after, []uint8{0, 0, 0, 1}) {
		t.Fatalf("unexpected current after swap: %v", after)
	}
	if g.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", g.Live())
	}

	g.Swap()
	if !slices.Equal(g.Snapshot(), before) {
		t.Fatal("second swap must restore the original slot")
	}
}
