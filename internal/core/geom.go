// Package core provides fundamental grid types for the hunt simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Cell identifies a grid square by row and column. Rows grow downward,
// columns grow to the right. Cells compare with == and are used as map keys
// throughout the simulation.
type Cell struct {
	Row, Col int
}

// Add returns the neighboring cell one step in the given direction.
func (c Cell) Add(d Direction) Cell {
	dr, dc := d.Vector()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the L1 distance between two cells: the number of
// orthogonal moves needed to travel between them on an empty grid.
func Manhattan(a, b Cell) int {
	return Abs(a.Row-b.Row) + Abs(a.Col-b.Col)
}

// Chebyshev returns the L∞ distance between two cells. A Chebyshev radius of
// r covers the square neighborhood of (2r+1)² cells around a point.
func Chebyshev(a, b Cell) int {
	return Max(Abs(a.Row-b.Row), Abs(a.Col-b.Col))
}

// Less orders cells row-major: by row, then by column. This is the canonical
// iteration order wherever the simulation walks a set of cells.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
