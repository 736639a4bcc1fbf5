package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		bad("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		bad("bird size must be positive, got %gx%g", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.Height >= c.Playfield.Height {
		bad("bird height %g does not fit playfield height %g", c.Bird.Height, c.Playfield.Height)
	}
	if c.Bird.X < 0 || c.Bird.X+c.Bird.Width > c.Playfield.Width {
		bad("bird x %g is outside the playfield", c.Bird.X)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Gap <= 0 {
		bad("obstacle width and gap must be positive")
	}
	if c.Obstacles.Speed <= 0 {
		bad("obstacle speed must be positive, got %g", c.Obstacles.Speed)
	}
	if c.Obstacles.Margin < 0 {
		bad("obstacle margin must not be negative, got %g", c.Obstacles.Margin)
	}
	if lo, hi := c.GapTopRange(); hi < lo {
		bad("gap %g plus margins %g do not fit playfield height %g",
			c.Obstacles.Gap, 2*c.Obstacles.Margin, c.Playfield.Height)
	}
	if c.Bird.X < c.Obstacles.Speed {
		bad("bird x %g must be at least the obstacle speed %g", c.Bird.X, c.Obstacles.Speed)
	}
	if c.Timing.TickPeriod <= 0 || c.Timing.SpawnPeriod <= 0 {
		bad("tick and spawn periods must be positive")
	}
	if c.Timing.SpawnPeriod < c.Timing.TickPeriod {
		bad("spawn period %s is shorter than tick period %s", c.Timing.SpawnPeriod, c.Timing.TickPeriod)
	}

	return errors.Join(errs...)
}
