package tetris

import "github.com/vovakirdan/handtris/internal/core"

// Collides reports whether the piece placed at pos shifted by (dx, dy)
// would leave the board sideways, pass the floor, or overlap a filled cell.
// Cells above the top edge are only checked against the side walls, so a
// piece may rotate or spawn partly off the top.
func Collides(b *Board, p Piece, pos core.Point, dx, dy int) bool {
	for _, c := range p.Cells() {
		x := pos.X + c.X + dx
		y := pos.Y + c.Y + dy
		if x < 0 || x >= b.Cols() || y >= b.Rows() {
			return true
		}
		if y >= 0 && b.IsOccupied(x, y) {
			return true
		}
	}
	return false
}
