// Package headless drives the flappy engine without a terminal, in virtual
// time, for reproducible runs and automated play.
package headless

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Event is a timer callback due at the current virtual instant.
type Event int

const (
	EventTick Event = iota
	EventSpawn
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventTick:
		return "tick"
	case EventSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Scheduler replays the two host timers in virtual time. The tick timer runs
// for the whole session; the spawn timer is armed explicitly, the way the
// terminal host arms it when a game starts.
type Scheduler struct {
	tickPeriod  time.Duration
	spawnPeriod time.Duration
	now         time.Duration
	nextSpawn   time.Duration
	spawnArmed  bool
	events      []Event
}

// NewScheduler creates a scheduler for the given periods.
func NewScheduler(t config.Timing) *Scheduler {
	return &Scheduler{
		tickPeriod:  t.TickPeriod,
		spawnPeriod: t.SpawnPeriod,
		events:      make([]Event, 0, 2),
	}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// ArmSpawn starts the spawn timer; the first spawn is one period from now.
func (s *Scheduler) ArmSpawn() {
	s.spawnArmed = true
	s.nextSpawn = s.now + s.spawnPeriod
}

// StopSpawn stops the spawn timer.
func (s *Scheduler) StopSpawn() {
	s.spawnArmed = false
}

// Advance moves virtual time forward by one tick period and returns the
// events due, tick first. The returned slice is reused by the next call.
func (s *Scheduler) Advance() []Event {
	s.now += s.tickPeriod
	s.events = append(s.events[:0], EventTick)

	if s.spawnPeriod <= 0 {
		return s.events
	}
	for s.spawnArmed && s.nextSpawn <= s.now {
		s.events = append(s.events, EventSpawn)
		s.nextSpawn += s.spawnPeriod
	}
	return s.events
}
