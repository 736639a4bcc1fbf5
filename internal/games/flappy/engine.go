// Package flappy implements a Flappy Bird-style game engine.
// The player flaps a bird through gaps in pipes that scroll in from the right.
//
// The engine only folds events into state: hosts call Flap on input, Tick on
// the tick period and SpawnObstacle on the spawn period, one call at a time.
// Rendering is a pure function of State.
package flappy

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Engine owns all mutable game state. It is not safe for concurrent use.
type Engine struct {
	cfg   config.FlappyConfig
	rng   *rand.Rand
	gaps  *GapSampler
	state State
}

// NewEngine creates an engine in the not-started phase.
// The seed drives gap offsets and obstacle IDs, so equal seeds and equal
// call sequences produce equal states.
func NewEngine(cfg config.FlappyConfig, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		cfg:  cfg,
		rng:  rng,
		gaps: NewGapSampler(rng, cfg),
	}
	e.state = initialState(cfg)
	return e
}

func initialState(cfg config.FlappyConfig) State {
	return State{
		Bird:  Bird{Y: cfg.InitialBirdY()},
		Phase: PhaseNotStarted,
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.FlappyConfig {
	return e.cfg
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Flap starts the game if needed and sets the bird's velocity to the flap
// impulse, discarding any velocity gained from gravity. Ignored once over.
func (e *Engine) Flap() {
	switch e.state.Phase {
	case PhaseOver:
		return
	case PhaseNotStarted:
		e.state.Phase = PhaseRunning
	}
	e.state.Bird.Velocity = e.cfg.Physics.FlapStrength
}

// Tick advances the simulation by one fixed period. No-op unless running.
//
// Collision is tested against the obstacles as they stood when the tick
// began and the bird after this tick's physics.
func (e *Engine) Tick() {
	st := &e.state
	if st.Phase != PhaseRunning {
		return
	}
	st.Ticks++

	bird := &st.Bird
	bird.Velocity += e.cfg.Physics.Gravity
	bird.Y += bird.Velocity

	// Ceiling and floor are both fatal; the bird is left clamped in range.
	if maxY := e.cfg.MaxBirdY(); bird.Y < 0 || bird.Y > maxY {
		bird.Y = core.ClampF(bird.Y, 0, maxY)
		st.Phase = PhaseOver
	}

	hit := e.hitsAny(st.Obstacles)

	e.advanceObstacles()
	if st.Phase == PhaseRunning {
		e.scorePassed()
	}

	if hit {
		st.Phase = PhaseOver
	}
}

// SpawnObstacle appends a new obstacle at the right edge of the playfield.
// No-op unless running.
func (e *Engine) SpawnObstacle() {
	if e.state.Phase != PhaseRunning {
		return
	}
	e.state.Obstacles = append(e.state.Obstacles, Obstacle{
		ID:     uuid.Must(uuid.NewRandomFromReader(e.rng)),
		X:      e.cfg.Playfield.Width,
		GapTop: e.gaps.Sample(),
	})
}

// Restart replaces the state with a fresh not-started game.
func (e *Engine) Restart() {
	e.state = initialState(e.cfg)
}

// BirdRect returns the bird's hitbox for the current state.
func (e *Engine) BirdRect() core.RectF {
	return birdRect(e.cfg, e.state.Bird)
}

func birdRect(cfg config.FlappyConfig, b Bird) core.RectF {
	return core.NewRectF(cfg.Bird.X, b.Y, cfg.Bird.Width, cfg.Bird.Height)
}

// hitsAny checks every obstacle without stopping at the first hit.
func (e *Engine) hitsAny(obstacles []Obstacle) bool {
	bird := e.BirdRect()
	hit := false
	for _, o := range obstacles {
		if o.Collides(bird, e.cfg) {
			hit = true
		}
	}
	return hit
}

// advanceObstacles moves every obstacle left and drops those whose right
// edge has passed the left edge of the playfield.
func (e *Engine) advanceObstacles() {
	width := e.cfg.Obstacles.Width
	kept := e.state.Obstacles[:0]
	for _, o := range e.state.Obstacles {
		o.X -= e.cfg.Obstacles.Speed
		if o.Right(width) < 0 {
			continue
		}
		kept = append(kept, o)
	}
	e.state.Obstacles = kept
}

// scorePassed awards one point per obstacle whose right edge is left of the bird.
func (e *Engine) scorePassed() {
	width := e.cfg.Obstacles.Width
	for i := range e.state.Obstacles {
		o := &e.state.Obstacles[i]
		if !o.Scored && o.Right(width) < e.cfg.Bird.X {
			o.Scored = true
			e.state.Score++
		}
	}
}
