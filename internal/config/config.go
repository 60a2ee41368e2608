// Package config provides YAML-based configuration loading for handtris.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains all tunable settings of the game and its surfaces.
type TetrisConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Timing     TimingConfig  `yaml:"timing"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Randomizer string        `yaml:"randomizer"`
	Gesture    GestureConfig `yaml:"gesture"`
	Render     RenderConfig  `yaml:"render"`
	Storage    StorageConfig `yaml:"storage"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines gravity pacing in milliseconds.
type TimingConfig struct {
	BaseDropMs int `yaml:"base_drop_ms"`
	MinDropMs  int `yaml:"min_drop_ms"`
	DropStepMs int `yaml:"drop_step_ms"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinePoints     int `yaml:"line_points"`
	SoftDropPoints int `yaml:"soft_drop_points"`
	LinesPerLevel  int `yaml:"lines_per_level"`
}

// GestureConfig defines the detector endpoint.
type GestureConfig struct {
	Addr           string   `yaml:"addr"`
	SustainMs      int      `yaml:"sustain_ms"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Mirrored       bool     `yaml:"mirrored"`
}

// Sustain returns the hold threshold as a duration.
func (g GestureConfig) Sustain() time.Duration {
	return time.Duration(g.SustainMs) * time.Millisecond
}

// RenderConfig defines colors and raster block size.
type RenderConfig struct {
	BlockSize int           `yaml:"block_size"`
	Palette   PaletteConfig `yaml:"palette"`
}

// PaletteConfig holds hex colors for the renderer.
type PaletteConfig struct {
	Pieces     []string `yaml:"pieces"`
	Background string   `yaml:"background"`
	Grid       string   `yaml:"grid"`
	Overlay    string   `yaml:"overlay"`
	Highlight  string   `yaml:"highlight"`
	Text       string   `yaml:"text"`
}

// StorageConfig selects the score database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// Validate reports inconsistent settings that no game package derives
// rules from, each wrapping ErrInvalid. Board, timing, scoring and colors
// are checked by tetris.SetConfig against the rules and palette it builds.
func (c TetrisConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Randomizer {
	case "", "uniform", "bag":
	default:
		bad("randomizer must be uniform or bag, got %q", c.Randomizer)
	}
	if c.Gesture.SustainMs < 0 {
		bad("gesture sustain_ms must not be negative")
	}
	if c.Render.BlockSize <= 0 {
		bad("render block_size must be positive")
	}
	if n := len(c.Render.Palette.Pieces); n != 0 && n != 7 {
		bad("palette needs exactly 7 piece colors, got %d", n)
	}
	return errors.Join(errs...)
}
