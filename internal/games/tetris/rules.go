package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Rules holds the tunable constants of a game. The scoring and level
// formulas are fixed; only their coefficients vary.
type Rules struct {
	Cols int
	Rows int

	LinePoints     int // Points per cleared line, multiplied by level
	SoftDropPoints int // Points per successful soft drop
	LinesPerLevel  int

	BaseDropInterval time.Duration // Interval at level 1
	MinDropInterval  time.Duration
	DropIntervalStep time.Duration // Reduction per level
}

// DefaultRules returns the classic 10×20 configuration.
func DefaultRules() Rules {
	return Rules{
		Cols:             10,
		Rows:             20,
		LinePoints:       100,
		SoftDropPoints:   1,
		LinesPerLevel:    10,
		BaseDropInterval: 1000 * time.Millisecond,
		MinDropInterval:  100 * time.Millisecond,
		DropIntervalStep: 100 * time.Millisecond,
	}
}

// Validate reports every inconsistent value.
func (r Rules) Validate() error {
	var errs []error
	if r.Cols < 4 || r.Rows < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", r.Cols, r.Rows))
	}
	if r.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("lines per level must be positive, got %d", r.LinesPerLevel))
	}
	if r.MinDropInterval <= 0 || r.BaseDropInterval < r.MinDropInterval {
		errs = append(errs, fmt.Errorf("drop interval must satisfy 0 < min <= base, got min=%s base=%s",
			r.MinDropInterval, r.BaseDropInterval))
	}
	if r.DropIntervalStep < 0 {
		errs = append(errs, fmt.Errorf("drop interval step must not be negative, got %s", r.DropIntervalStep))
	}
	if r.LinePoints < 0 || r.SoftDropPoints < 0 {
		errs = append(errs, errors.New("points must not be negative"))
	}
	return errors.Join(errs...)
}

// LevelFor returns the level reached after clearing the given total lines.
func (r Rules) LevelFor(lines int) int {
	return lines/r.LinesPerLevel + 1
}

// DropIntervalFor returns the gravity interval at the given level.
func (r Rules) DropIntervalFor(level int) time.Duration {
	d := r.BaseDropInterval - time.Duration(level-1)*r.DropIntervalStep
	if d < r.MinDropInterval {
		return r.MinDropInterval
	}
	return d
}
