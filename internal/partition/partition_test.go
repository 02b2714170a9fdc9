package partition

import (
	"errors"
	"fmt"
	"testing"
)

func TestAllCoversGridExactly(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {5, 5}, {7, 3}, {10, 13}, {16, 16}}
	for _, size := range sizes {
		rows, cols := size[0], size[1]
		for _, mode := range []Mode{ByRow, ByColumn} {
			for workers := 1; workers <= min(rows, cols); workers++ {
				regions, err := All(rows, cols, workers, mode)
				if err != nil {
					t.Fatalf("%dx%d %v w=%d: %v", rows, cols, mode, workers, err)
				}
				if err := Validate(rows, cols, regions); err != nil {
					t.Fatalf("%dx%d %v w=%d: %v", rows, cols, mode, workers, err)
				}
				total := 0
				for _, r := range regions {
					total += r.Cells()
				}
				if total != rows*cols {
					t.Fatalf("%dx%d %v w=%d: regions hold %d cells", rows, cols, mode, workers, total)
				}
			}
		}
	}
}

func TestRemainderGoesToFirstWorkers(t *testing.T) {
	regions, err := All(10, 4, 3, ByRow)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 3}, {4, 6}, {7, 9}}
	for i, r := range regions {
		if r.StartRow != want[i][0] || r.EndRow != want[i][1] {
			t.Fatalf("worker %d rows %d:%d, want %d:%d", i, r.StartRow, r.EndRow, want[i][0], want[i][1])
		}
		if r.StartCol != 0 || r.EndCol != 3 {
			t.Fatalf("worker %d must span every column, got %d:%d", i, r.StartCol, r.EndCol)
		}
	}

	regions, err = All(4, 11, 4, ByColumn)
	if err != nil {
		t.Fatal(err)
	}
	wantCols := [][2]int{{0, 2}, {3, 5}, {6, 8}, {9, 10}}
	for i, r := range regions {
		if r.StartCol != wantCols[i][0] || r.EndCol != wantCols[i][1] {
			t.Fatalf("worker %d cols %d:%d, want %d:%d", i, r.StartCol, r.EndCol, wantCols[i][0], wantCols[i][1])
		}
		if r.Rows() != 4 {
			t.Fatalf("worker %d must span every row, got %d", i, r.Rows())
		}
	}
}

func TestWorkerCountOutOfRange(t *testing.T) {
	for _, workers := range []int{0, -2, 6, 9} {
		_, err := All(5, 8, workers, ByRow)
		if !errors.Is(err, ErrWorkers) {
			t.Fatalf("workers=%d: err = %v, want ErrWorkers", workers, err)
		}
	}
	if _, err := Compute(5, 5, 2, ByRow, 2); err == nil {
		t.Fatal("id outside [0, workers) must fail")
	}
	if _, err := Compute(5, 5, 2, Mode(7), 0); !errors.Is(err, ErrMode) {
		t.Fatalf("unknown mode err = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"row": ByRow, "0": ByRow, " Rows ": ByRow, "column": ByColumn, "col": ByColumn, "1": ByColumn}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("diagonal"); !errors.Is(err, ErrMode) {
		t.Fatalf("ParseMode(diagonal) err = %v", err)
	}
}

func TestValidateDetectsOverlapAndGap(t *testing.T) {
	overlap := []Region{
		{Worker: 0, StartRow: 0, EndRow: 2, StartCol: 0, EndCol: 3},
		{Worker: 1, StartRow: 2, EndRow: 3, StartCol: 0, EndCol: 3},
	}
	if err := Validate(4, 4, overlap); !errors.Is(err, ErrCover) {
		t.Fatalf("overlap err = %v", err)
	}
	gap := []Region{
		{Worker: 0, StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 3},
		{Worker: 1, StartRow: 3, EndRow: 3, StartCol: 0, EndCol: 3},
	}
	if err := Validate(4, 4, gap); !errors.Is(err, ErrCover) {
		t.Fatalf("gap err = %v", err)
	}
	outside := []Region{{Worker: 0, StartRow: 0, EndRow: 4, StartCol: 0, EndCol: 3}}
	if err := Validate(4, 4, outside); !errors.Is(err, ErrCover) {
		t.Fatalf("out of bounds err = %v", err)
	}
}

func TestRegionString(t *testing.T) {
	r, err := Compute(8, 6, 3, ByRow, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := fmt.Sprint(r)
	want := "tid 1: rows: 3:5 (3) cols 0:5 (6)"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
