package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/handtris/internal/core"
)

// Status is the engine lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ActivePiece is the falling piece and its top-left board position.
type ActivePiece struct {
	Piece Piece
	Pos   core.Point
}

// Cells returns the absolute board positions of the piece's filled cells.
func (a ActivePiece) Cells() []core.Point {
	cells := a.Piece.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(a.Pos.X, a.Pos.Y)
	}
	return cells
}

// Engine is the game state machine. It is not safe for concurrent use;
// the driver serializes frames and input on one goroutine.
type Engine struct {
	rules  Rules
	source PieceSource
	board  *Board
	active *ActivePiece
	status Status

	score        int
	lines        int
	level        int
	dropInterval time.Duration
	dropCounter  time.Duration

	// lastFrame is the Advance baseline; zero means the next frame has dt=0.
	lastFrame time.Time
}

// NewEngine creates an idle engine. Call Start to begin a game.
// It rejects rules that fail Validate.
func NewEngine(rules Rules, source PieceSource) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	e := &Engine{
		rules:  rules,
		source: source,
		board:  NewBoard(rules.Cols, rules.Rows),
	}
	e.resetCounters()
	return e, nil
}

func (e *Engine) resetCounters() {
	e.score = 0
	e.lines = 0
	e.level = 1
	e.dropInterval = e.rules.DropIntervalFor(1)
	e.dropCounter = 0
	e.lastFrame = time.Time{}
}

// Start clears the board, resets score, lines and level, and spawns the
// first piece. Allowed from any state, so it doubles as restart.
func (e *Engine) Start() {
	e.board.Clear()
	e.resetCounters()
	e.active = nil
	e.status = StatusRunning
	e.spawnPiece()
}

// Pause suspends a running game.
func (e *Engine) Pause() {
	if e.status == StatusRunning {
		e.status = StatusPaused
	}
}

// Resume continues a paused game. The frame clock baseline is reset so the
// time spent paused does not count toward gravity.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusRunning
	e.lastFrame = time.Time{}
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusRunning:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// spawnPiece places the next piece centered on the top row. If it
// immediately collides the game is over and the piece is discarded.
func (e *Engine) spawnPiece() {
	p := NewPiece(e.source.Next())
	pos := core.Point{X: (e.rules.Cols - p.Width()) / 2, Y: 0}
	if Collides(e.board, p, pos, 0, 0) {
		e.active = nil
		e.status = StatusGameOver
		return
	}
	e.active = &ActivePiece{Piece: p, Pos: pos}
}

func (e *Engine) playing() bool {
	return e.status == StatusRunning && e.active != nil
}

func (e *Engine) shift(dx, dy int) bool {
	if !e.playing() || Collides(e.board, e.active.Piece, e.active.Pos, dx, dy) {
		return false
	}
	e.active.Pos = e.active.Pos.Add(dx, dy)
	return true
}

// MoveLeft shifts the active piece one column left if unobstructed.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight shifts the active piece one column right if unobstructed.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// Rotate turns the active piece clockwise in place. A blocked rotation is
// rejected; there are no wall kicks.
func (e *Engine) Rotate() bool {
	if !e.playing() {
		return false
	}
	rotated := e.active.Piece.RotateClockwise()
	if Collides(e.board, rotated, e.active.Pos, 0, 0) {
		return false
	}
	e.active.Piece = rotated
	return true
}

// SoftDrop moves the piece down one row for a point. It never merges;
// landing is left to gravity.
func (e *Engine) SoftDrop() bool {
	if !e.shift(0, 1) {
		return false
	}
	e.score += e.rules.SoftDropPoints
	return true
}

// Drop is one gravity tick: descend if possible, otherwise lock the piece,
// clear lines and spawn the next one.
func (e *Engine) Drop() {
	if !e.playing() {
		return
	}
	if e.shift(0, 1) {
		return
	}
	e.lock()
}

func (e *Engine) lock() {
	e.board.Merge(e.active.Piece, e.active.Pos)
	e.active = nil

	if n := e.board.ClearFullLines(); n > 0 {
		// Points use the level in effect before these lines count.
		e.score += n * e.rules.LinePoints * e.level
		e.lines += n
		e.level = e.rules.LevelFor(e.lines)
		e.dropInterval = e.rules.DropIntervalFor(e.level)
	}

	e.spawnPiece()
}

// Update advances gravity by dt. When the accumulated time exceeds the
// drop interval one Drop is performed and the accumulator restarts at zero.
func (e *Engine) Update(dt time.Duration) {
	if e.status != StatusRunning {
		return
	}
	e.dropCounter += dt
	if e.dropCounter > e.dropInterval {
		e.Drop()
		e.dropCounter = 0
	}
}

// Advance feeds a frame timestamp. The first frame after Start or Resume
// only sets the baseline.
func (e *Engine) Advance(now time.Time) {
	var dt time.Duration
	if !e.lastFrame.IsZero() {
		dt = now.Sub(e.lastFrame)
		if dt < 0 {
			dt = 0
		}
	}
	e.lastFrame = now
	e.Update(dt)
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// DropInterval returns the current gravity interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.status == StatusGameOver }

// IsPaused reports whether the game is paused.
func (e *Engine) IsPaused() bool { return e.status == StatusPaused }

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Rules returns the engine's configuration.
func (e *Engine) Rules() Rules { return e.rules }

// State returns a snapshot that shares no memory with the engine.
func (e *Engine) State() State {
	s := State{
		Board:          e.board.Clone(),
		Score:          e.score,
		Lines:          e.lines,
		Level:          e.level,
		DropIntervalMs: int(e.dropInterval / time.Millisecond),
		IsGameOver:     e.IsGameOver(),
		IsPaused:       e.IsPaused(),
		Status:         e.status,
	}
	if e.active != nil {
		a := *e.active
		s.Active = &a
	}
	return s
}
