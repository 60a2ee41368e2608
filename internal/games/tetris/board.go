// Package tetris implements the falling-block game: the board grid, the
// seven pieces, movement legality and the engine state machine. The engine
// is pure logic driven by explicit time deltas, so it runs identically under
// the terminal loop, an SSH session or a test.
package tetris

import "github.com/vovakirdan/handtris/internal/core"

// Cell is one board position. Zero is empty; 1..7 is the ColorID of the
// piece kind that filled it.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != Empty
}

// Board is a fixed-size grid, row-major with row 0 at the top.
type Board struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewBoard creates an empty board. Dimensions never change afterwards.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.cells = make([][]Cell, rows)
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Clear resets every cell to Empty.
func (b *Board) Clear() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// IsOccupied reports whether the in-bounds cell (x, y) is filled.
// Out-of-bounds positions report false; bounds are the collision rules' job.
func (b *Board) IsOccupied(x, y int) bool {
	return b.InBounds(x, y) && b.cells[y][x].Filled()
}

// Get returns the cell at (x, y), or Empty when out of bounds.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Merge writes the piece's filled cells at pos using the piece color.
// Cells above the top edge (y < 0) are dropped. The caller is expected to
// have validated the placement with Collides.
func (b *Board) Merge(p Piece, pos core.Point) {
	color := Cell(p.Kind.Color())
	for _, c := range p.Cells() {
		x, y := pos.X+c.X, pos.Y+c.Y
		if y < 0 {
			continue
		}
		b.Set(x, y, color)
	}
}

// ClearFullLines removes every full row, shifting the rows above it down
// and inserting empty rows at the top. Rows are scanned bottom to top and
// the same index is re-checked after a removal. Returns the number cleared.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		// Shift rows [0, y) down by one, reusing the removed row's storage.
		removed := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(removed)
		b.cells[0] = removed
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// Row returns a copy of row y, or nil when out of range.
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= b.rows {
		return nil
	}
	row := make([]Cell, b.cols)
	copy(row, b.cells[y])
	return row
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Filled() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.cols, b.rows)
	for y := range b.cells {
		copy(out.cells[y], b.cells[y])
	}
	return out
}
