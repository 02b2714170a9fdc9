package core

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}
