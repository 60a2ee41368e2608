package tetris

import (
	"strconv"

	"github.com/vovakirdan/handtris/internal/core"
	"github.com/vovakirdan/handtris/internal/render"
)

// State is a read-only snapshot of the engine.
type State struct {
	Board          *Board
	Active         *ActivePiece // nil when idle or after game over
	Score          int
	Lines          int
	Level          int
	DropIntervalMs int
	IsGameOver     bool
	IsPaused       bool
	Status         Status
}

// Summary returns the platform-facing subset of the snapshot.
func (s State) Summary() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		GameOver: s.IsGameOver,
		Paused:   s.IsPaused,
	}
}

// Scene converts the snapshot into what the render adapter draws.
func (s State) Scene() render.Scene {
	scene := render.Scene{
		Cols:     s.Board.Cols(),
		Rows:     s.Board.Rows(),
		Cells:    make([][]int, s.Board.Rows()),
		GameOver: s.IsGameOver,
		Paused:   s.IsPaused,
	}
	for y := range scene.Cells {
		row := s.Board.Row(y)
		scene.Cells[y] = make([]int, len(row))
		for x, c := range row {
			scene.Cells[y][x] = int(c)
		}
	}
	if s.Active != nil {
		color := s.Active.Piece.Kind.Color()
		for _, c := range s.Active.Cells() {
			scene.Active = append(scene.Active, render.Block{X: c.X, Y: c.Y, ColorID: color})
		}
	}
	return scene
}

// Snapshot is a compact, comparable record of a game used to verify
// deterministic replays.
type Snapshot struct {
	Status Status
	Score  int
	Lines  int
	Level  int
	Active string // "<kind>@x,y" or empty
	Board  string // one rune per cell, '.' for empty, rows joined by '/'
}

// Snapshot returns the compact record of the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status: e.status,
		Score:  e.score,
		Lines:  e.lines,
		Level:  e.level,
	}
	if e.active != nil {
		snap.Active = e.active.Piece.Kind.String() + "@" +
			strconv.Itoa(e.active.Pos.X) + "," + strconv.Itoa(e.active.Pos.Y)
	}

	buf := make([]byte, 0, (e.board.Cols()+1)*e.board.Rows())
	for y := 0; y < e.board.Rows(); y++ {
		if y > 0 {
			buf = append(buf, '/')
		}
		for x := 0; x < e.board.Cols(); x++ {
			c := e.board.Get(x, y)
			switch {
			case !c.Filled():
				buf = append(buf, '.')
			case int(c) <= KindCount:
				buf = append(buf, kindNames[int(c)-1][0])
			default:
				buf = append(buf, '?')
			}
		}
	}
	snap.Board = string(buf)
	return snap
}
