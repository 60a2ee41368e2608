package tetris

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/handtris/internal/config"
	"github.com/vovakirdan/handtris/internal/core"
	"github.com/vovakirdan/handtris/internal/registry"
	"github.com/vovakirdan/handtris/internal/render"
)

const (
	hudWidth  = 18 // Columns reserved right of the board
	minHUDGap = 2
)

// Package-level variables for config
var (
	cfgMu      sync.RWMutex
	gameConfig = config.DefaultTetrisConfig()
)

// SetConfig validates cfg and replaces the configuration used by games
// created afterwards. On error the current configuration is kept and the
// error wraps config.ErrInvalid.
func SetConfig(cfg config.TetrisConfig) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	cfgMu.Lock()
	defer cfgMu.Unlock()
	gameConfig = cfg
	return nil
}

// validateConfig combines the config package checks with the checks on
// the derived engine rules and palette.
func validateConfig(cfg config.TetrisConfig) error {
	errs := []error{cfg.Validate()}
	if err := RulesFromConfig(cfg).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", config.ErrInvalid, err))
	}
	if err := PaletteFromConfig(cfg.Render.Palette).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", config.ErrInvalid, err))
	}
	return errors.Join(errs...)
}

func currentConfig() config.TetrisConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return gameConfig
}

// GameID returns the registry ID for a randomizer name.
func GameID(r Randomizer) string {
	if r == RandomizerBag {
		return "tetris_bag"
	}
	return "tetris"
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New(RandomizerUniform)
	})
	registry.Register("tetris_bag", func() registry.Game {
		return New(RandomizerBag)
	})
}

// Game binds one engine to the platform contract.
type Game struct {
	randomizer Randomizer
	cfg        config.TetrisConfig
	rules      Rules
	engine     *Engine
	sessionID  string

	terminal *render.Renderer
	pixels   *render.Renderer
}

// New creates a game using the current package configuration.
func New(r Randomizer) *Game {
	cfg := currentConfig()
	palette := PaletteFromConfig(cfg.Render.Palette)
	bs := cfg.Render.BlockSize
	if bs <= 0 {
		bs = render.PixelLayout().BlockW
	}
	pixel := render.PixelLayout()
	pixel.BlockW, pixel.BlockH = bs, bs

	return &Game{
		randomizer: r,
		cfg:        cfg,
		rules:      RulesFromConfig(cfg),
		terminal:   render.NewRenderer(palette, render.TerminalLayout()),
		pixels:     render.NewRenderer(palette, pixel),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.randomizer)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.randomizer == RandomizerBag {
		return "Tetris (7-Bag)"
	}
	return "Tetris"
}

// Reset starts a new game seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	engine, err := NewEngine(g.rules, NewSource(g.randomizer, rng))
	if err != nil {
		// SetConfig only stores configurations whose rules validate.
		panic(err)
	}
	g.engine = engine
	g.restart()
}

func (g *Game) restart() {
	g.sessionID = uuid.NewString()
	g.engine.Start()
}

// HandleAction applies one input. Movement is ignored unless running.
func (g *Game) HandleAction(a core.Action) {
	if g.engine == nil {
		return
	}
	switch a {
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionSoftDrop:
		g.engine.SoftDrop()
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionRestart:
		g.restart()
	}
}

// Advance feeds the frame clock to the engine.
func (g *Game) Advance(now time.Time) {
	if g.engine != nil {
		g.engine.Advance(now)
	}
}

// SessionID identifies the current run; it changes on every restart.
func (g *Game) SessionID() string {
	return g.sessionID
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1}
	}
	return g.engine.State().Summary()
}

// Render draws the board, a frame around it and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	state := g.engine.State()
	bw, bh := g.terminal.BoardSize(state.Board.Cols(), state.Board.Rows())
	frameW, frameH := bw+2, bh+2

	if dst.Width() < frameW || dst.Height() < frameH {
		g.renderTooSmall(dst)
		return
	}

	totalW := frameW
	showHUD := dst.Width() >= frameW+minHUDGap+hudWidth
	if showHUD {
		totalW += minHUDGap + hudWidth
	}
	x := (dst.Width() - totalW) / 2
	y := (dst.Height() - frameH) / 2

	dst.DrawBox(core.NewRect(x, y, frameW, frameH))
	surface := render.NewScreenSurface(dst, core.Point{X: x + 1, Y: y + 1}, bw, bh)
	g.terminal.Render(surface, state.Scene())

	if showHUD {
		g.renderHUD(dst, x+frameW+minHUDGap, y, state)
	} else {
		dst.DrawText(x, y+frameH-1, fmt.Sprintf(" %d ", state.Score))
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int, s State) {
	title := core.Color(g.cfg.Render.Palette.Text)
	dst.DrawTextColor(x, y, g.Title(), title)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", s.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", s.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Level  %d", s.Level))
	dst.DrawText(x, y+5, fmt.Sprintf("Speed  %dms", s.DropIntervalMs))

	switch {
	case s.IsGameOver:
		dst.DrawText(x, y+7, "R to restart")
	case s.IsPaused:
		dst.DrawText(x, y+7, "P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// Screenshot writes a PNG of the board at the configured block size.
func (g *Game) Screenshot(w io.Writer) error {
	if g.engine == nil {
		return errors.New("tetris: no game to capture")
	}
	state := g.engine.State()
	pw, ph := g.pixels.BoardSize(state.Board.Cols(), state.Board.Rows())
	surface := render.NewImageSurface(pw, ph)
	g.pixels.Render(surface, state.Scene())
	return surface.WritePNG(w)
}

// RulesFromConfig converts the YAML settings into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Rules{
		Cols:             cfg.Board.Cols,
		Rows:             cfg.Board.Rows,
		LinePoints:       cfg.Scoring.LinePoints,
		SoftDropPoints:   cfg.Scoring.SoftDropPoints,
		LinesPerLevel:    cfg.Scoring.LinesPerLevel,
		BaseDropInterval: ms(cfg.Timing.BaseDropMs),
		MinDropInterval:  ms(cfg.Timing.MinDropMs),
		DropIntervalStep: ms(cfg.Timing.DropStepMs),
	}
}

// PaletteFromConfig overlays configured colors on the default palette.
func PaletteFromConfig(p config.PaletteConfig) render.Palette {
	out := render.DefaultPalette()
	for i, hex := range p.Pieces {
		if i < len(out.Pieces) && hex != "" {
			out.Pieces[i] = core.Color(hex)
		}
	}
	set := func(dst *core.Color, hex string) {
		if hex != "" {
			*dst = core.Color(hex)
		}
	}
	set(&out.Background, p.Background)
	set(&out.Grid, p.Grid)
	set(&out.Overlay, p.Overlay)
	set(&out.Highlight, p.Highlight)
	set(&out.Text, p.Text)
	return out
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.Screenshotter = (*Game)(nil)
)
