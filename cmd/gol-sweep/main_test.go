package main

import (
	"path/filepath"
	"slices"
	"testing"

	"pgol/internal/world"
)

func TestSavedWorldReplays(t *testing.T) {
	w, err := world.Random(12, 9, 40, 0.3, 7)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sweep.txt")
	if err := saveWorld(path, w); err != nil {
		t.Fatal(err)
	}

	got, err := world.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rows != w.Rows || got.Cols != w.Cols || got.Iterations != w.Iterations || !slices.Equal(got.Live, w.Live) {
		t.Fatalf("replayed world = %+v, want %+v", got, w)
	}

	if err := saveWorld(filepath.Join(t.TempDir(), "missing", "sweep.txt"), w); err == nil {
		t.Fatal("saving into a missing directory must fail")
	}
}
