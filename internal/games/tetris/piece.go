package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/handtris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of piece kinds.
const KindCount = 7

// Kinds lists every kind in ColorID order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Color returns the ColorID (1..7) stored in board cells for this kind.
func (k Kind) Color() int {
	return int(k) + 1
}

// Canonical shapes, padded to a square bounding box so rotation keeps the
// grid size. The visible rows sit at the top of each box.
var shapes = [KindCount][][]bool{
	KindI: grid(
		"####",
		"....",
		"....",
		"....",
	),
	KindO: grid(
		"##",
		"##",
	),
	KindT: grid(
		".#.",
		"###",
		"...",
	),
	KindS: grid(
		".##",
		"##.",
		"...",
	),
	KindZ: grid(
		"##.",
		".##",
		"...",
	),
	KindJ: grid(
		"#..",
		"###",
		"...",
	),
	KindL: grid(
		"..#",
		"###",
		"...",
	),
}

func grid(rows ...string) [][]bool {
	g := make([][]bool, len(rows))
	for y, row := range rows {
		g[y] = make([]bool, len(row))
		for x, ch := range row {
			g[y][x] = ch == '#'
		}
	}
	return g
}

// Piece is a kind plus its current N×N shape. Pieces are immutable;
// rotation returns a new value.
type Piece struct {
	Kind  Kind
	shape [][]bool
}

// NewPiece returns the piece in its spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, shape: shapes[k]}
}

// Size returns N, the side of the square bounding box.
func (p Piece) Size() int {
	return len(p.shape)
}

// Width returns the box width used to center the piece on spawn.
func (p Piece) Width() int {
	return p.Size()
}

// Filled reports whether the shape cell at (x, y) is set.
func (p Piece) Filled(x, y int) bool {
	if y < 0 || y >= len(p.shape) || x < 0 || x >= len(p.shape[y]) {
		return false
	}
	return p.shape[y][x]
}

// Cells returns the offsets of every filled cell, row by row.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for y, row := range p.shape {
		for x, set := range row {
			if set {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// RotateClockwise returns the piece turned 90° clockwise:
// rotated[i][j] = shape[N-1-j][i].
func (p Piece) RotateClockwise() Piece {
	n := len(p.shape)
	rotated := make([][]bool, n)
	for i := range rotated {
		rotated[i] = make([]bool, n)
		for j := range rotated[i] {
			rotated[i][j] = p.shape[n-1-j][i]
		}
	}
	return Piece{Kind: p.Kind, shape: rotated}
}

// Equal reports whether two pieces have the same kind and shape.
func (p Piece) Equal(other Piece) bool {
	if p.Kind != other.Kind || len(p.shape) != len(other.shape) {
		return false
	}
	for y := range p.shape {
		for x := range p.shape[y] {
			if p.shape[y][x] != other.shape[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape as '#' and '.' rows, for tests and debugging.
func (p Piece) String() string {
	var sb strings.Builder
	for y, row := range p.shape {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, set := range row {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
