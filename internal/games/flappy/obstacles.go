package flappy

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a fixed gap, moving left over time.
type Obstacle struct {
	ID     uuid.UUID
	X      float64 // Left edge
	GapTop float64 // Offset of the gap's top from the top of the playfield
	Scored bool    // Set once when the bird passes the pipe
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// TopRect returns the solid region above the gap.
func (o Obstacle) TopRect(cfg config.FlappyConfig) core.RectF {
	return core.NewRectF(o.X, 0, cfg.Obstacles.Width, o.GapTop)
}

// BottomRect returns the solid region below the gap.
func (o Obstacle) BottomRect(cfg config.FlappyConfig) core.RectF {
	bottomY := o.GapTop + cfg.Obstacles.Gap
	return core.NewRectF(o.X, bottomY, cfg.Obstacles.Width, cfg.Playfield.Height-bottomY)
}

// Collides reports whether the bird's box overlaps either solid region.
func (o Obstacle) Collides(bird core.RectF, cfg config.FlappyConfig) bool {
	return bird.Intersects(o.TopRect(cfg)) || bird.Intersects(o.BottomRect(cfg))
}

// GapSampler draws gap-top offsets uniformly over the whole units of the
// configured range, so the gap plus both margins always fit the playfield.
type GapSampler struct {
	rng    *rand.Rand
	lo, hi float64
}

// NewGapSampler creates a sampler for cfg drawing from rng.
func NewGapSampler(rng *rand.Rand, cfg config.FlappyConfig) *GapSampler {
	lo, hi := cfg.GapTopRange()
	return &GapSampler{rng: rng, lo: lo, hi: hi}
}

// Sample returns a new gap-top offset within the configured range.
func (g *GapSampler) Sample() float64 {
	first := math.Ceil(g.lo)
	last := math.Floor(g.hi)
	if last <= first {
		// No whole unit strictly inside the range
		return g.lo
	}
	return first + float64(g.rng.Intn(int(last-first)+1))
}
