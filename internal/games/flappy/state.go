package flappy

import "slices"

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Bird is the player's vertical state. Its horizontal position is fixed by config.
type Bird struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive is downward
}

// State is the complete simulation state.
type State struct {
	Bird      Bird
	Obstacles []Obstacle // Creation order, left to right
	Score     int
	Phase     Phase
	Ticks     uint64 // Ticks processed while running
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Obstacles = slices.Clone(s.Obstacles)
	return c
}
