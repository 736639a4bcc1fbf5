package headless

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Source decides, once per tick period, whether to flap.
type Source interface {
	ShouldFlap(st flappy.State, cfg config.FlappyConfig) bool
}

// SourceFunc adapts a function to Source.
type SourceFunc func(st flappy.State, cfg config.FlappyConfig) bool

// ShouldFlap calls f.
func (f SourceFunc) ShouldFlap(st flappy.State, cfg config.FlappyConfig) bool {
	return f(st, cfg)
}

// Idle never flaps, so the game never starts.
var Idle = SourceFunc(func(flappy.State, config.FlappyConfig) bool { return false })

// DefaultSlack is how far above the target gap bottom the autopilot flaps.
const DefaultSlack = 10

// Autopilot flaps when the bird's bottom is about to sink below the bottom of
// the next gap (or of a virtual gap at mid-field when no pipe is ahead).
type Autopilot struct {
	Slack float64
}

// ShouldFlap implements Source.
func (a Autopilot) ShouldFlap(st flappy.State, cfg config.FlappyConfig) bool {
	switch st.Phase {
	case flappy.PhaseNotStarted:
		return true
	case flappy.PhaseOver:
		return false
	}

	nextBottom := st.Bird.Y + st.Bird.Velocity + cfg.Physics.Gravity + cfg.Bird.Height
	return nextBottom > targetBottom(st, cfg)-a.Slack
}

// targetBottom returns the bottom of the first gap the bird has not yet cleared.
func targetBottom(st flappy.State, cfg config.FlappyConfig) float64 {
	for _, o := range st.Obstacles {
		if o.Right(cfg.Obstacles.Width) >= cfg.Bird.X {
			return o.GapTop + cfg.Obstacles.Gap
		}
	}
	return (cfg.Playfield.Height + cfg.Obstacles.Gap) / 2
}
