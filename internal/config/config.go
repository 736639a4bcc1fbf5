// Package config provides YAML-based game configuration loading,
// presets and validation for the flappy engine.
package config

import (
	"strings"
	"time"
)

// FlappyConfig contains every tunable constant of the game.
// Distances are playfield units, speeds are units per tick.
type FlappyConfig struct {
	Playfield Playfield  `yaml:"playfield"`
	Bird      BirdConfig `yaml:"bird"`
	Physics   Physics    `yaml:"physics"`
	Obstacles Obstacles  `yaml:"obstacles"`
	Timing    Timing     `yaml:"timing"`
}

// Playfield defines the size of the simulated area.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the bird hitbox. X is fixed for the whole game.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the per-tick vertical motion constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every tick
	FlapStrength float64 `yaml:"flap_strength"` // Velocity set on flap (negative = up)
}

// Obstacles defines pipe geometry and motion.
type Obstacles struct {
	Width  float64 `yaml:"width"`
	Gap    float64 `yaml:"gap"`    // Height of the passable gap
	Speed  float64 `yaml:"speed"`  // Leftward movement per tick
	Margin float64 `yaml:"margin"` // Minimum solid height above and below the gap
}

// Timing defines the two independent host periods.
type Timing struct {
	TickPeriod  time.Duration `yaml:"tick_period"`
	SpawnPeriod time.Duration `yaml:"spawn_period"`
}

// InitialBirdY returns the bird's starting position, vertically centered.
func (c FlappyConfig) InitialBirdY() float64 {
	return c.Playfield.Height/2 - c.Bird.Height/2
}

// MaxBirdY returns the largest in-bounds bird position.
func (c FlappyConfig) MaxBirdY() float64 {
	return c.Playfield.Height - c.Bird.Height
}

// GapTopRange returns the inclusive range a spawned gap-top offset may take.
func (c FlappyConfig) GapTopRange() (lo, hi float64) {
	return c.Obstacles.Margin, c.Playfield.Height - c.Obstacles.Gap - c.Obstacles.Margin
}

// SpawnEveryTicks converts the spawn period into whole tick periods, at least 1.
func (c FlappyConfig) SpawnEveryTicks() int {
	if c.Timing.TickPeriod <= 0 {
		return 1
	}
	n := int((c.Timing.SpawnPeriod + c.Timing.TickPeriod/2) / c.Timing.TickPeriod)
	if n < 1 {
		n = 1
	}
	return n
}

// Preset is a named set of constant (non-progressing) tuning overrides.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the accepted preset names in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// PresetNames returns the preset names as a comma-separated list.
func PresetNames() string {
	names := make([]string, 0, len(Presets()))
	for _, p := range Presets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
