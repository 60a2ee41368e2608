package render

import "github.com/vovakirdan/handtris/internal/core"

// Block is one filled cell of the active piece in board coordinates.
type Block struct {
	X, Y    int
	ColorID int
}

// Scene is everything the renderer needs from a game snapshot.
type Scene struct {
	Cols, Rows int
	Cells      [][]int // ColorIDs, row-major, 0 = empty
	Active     []Block
	GameOver   bool
	Paused     bool
}

// Layout sets how board cells map to surface units.
type Layout struct {
	BlockW    int  // Width of one board cell
	BlockH    int  // Height of one board cell
	Gap       int  // Units left unpainted on the right and bottom of a block
	Highlight int  // Height of the highlight strip on top of a block, 0 disables
	GridLines bool // Stroke the cell grid over the background
}

// PixelLayout is the raster layout: 30px blocks with bevel and grid.
func PixelLayout() Layout {
	return Layout{BlockW: 30, BlockH: 30, Gap: 2, Highlight: 4, GridLines: true}
}

// TerminalLayout draws each cell as two characters side by side, which
// keeps blocks roughly square in common terminal fonts.
func TerminalLayout() Layout {
	return Layout{BlockW: 2, BlockH: 1}
}

// Renderer draws scenes with a fixed palette and layout.
type Renderer struct {
	palette Palette
	layout  Layout
}

// NewRenderer creates a renderer.
func NewRenderer(p Palette, l Layout) *Renderer {
	return &Renderer{palette: p, layout: l}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout { return r.layout }

// BoardSize returns the surface area the scene occupies.
func (r *Renderer) BoardSize(cols, rows int) (w, h int) {
	return cols * r.layout.BlockW, rows * r.layout.BlockH
}

// Render paints the scene: background, grid, locked cells, the active
// piece, then the game-over or pause overlay.
func (r *Renderer) Render(dst Surface, s Scene) {
	w, h := r.BoardSize(s.Cols, s.Rows)
	board := core.NewRect(0, 0, w, h)

	dst.FillRect(board, r.palette.Background)

	if r.layout.GridLines {
		for y := 0; y <= s.Rows; y++ {
			py := y * r.layout.BlockH
			dst.StrokeLine(0, py, w, py, r.palette.Grid)
		}
		for x := 0; x <= s.Cols; x++ {
			px := x * r.layout.BlockW
			dst.StrokeLine(px, 0, px, h, r.palette.Grid)
		}
	}

	for y, row := range s.Cells {
		for x, id := range row {
			if id != 0 {
				r.drawBlock(dst, x, y, r.palette.Piece(id))
			}
		}
	}

	for _, b := range s.Active {
		// Cells above the top edge stay hidden until they enter the board.
		if b.Y < 0 {
			continue
		}
		r.drawBlock(dst, b.X, b.Y, r.palette.Piece(b.ColorID))
	}

	switch {
	case s.GameOver:
		dst.FillRect(board, r.palette.Overlay)
		r.label(dst, board, "GAME OVER")
	case s.Paused:
		r.label(dst, board, "PAUSED")
	}
}

func (r *Renderer) drawBlock(dst Surface, x, y int, c core.Color) {
	l := r.layout
	px, py := x*l.BlockW, y*l.BlockH
	w, h := l.BlockW-l.Gap, l.BlockH-l.Gap
	if w <= 0 || h <= 0 {
		return
	}
	dst.FillRect(core.NewRect(px, py, w, h), c)
	if l.Highlight > 0 {
		dst.FillRect(core.NewRect(px, py, w, core.Min(l.Highlight, h)), r.palette.Highlight)
	}
}

func (r *Renderer) label(dst Surface, board core.Rect, text string) {
	ts, ok := dst.(TextSurface)
	if !ok {
		return
	}
	ts.DrawLabel(core.Point{X: board.X + board.W/2, Y: board.Y + board.H/2}, text, r.palette.Text)
}
