package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  500,
			Height: 700,
		},
		Bird: BirdConfig{
			X:      50,
			Width:  30,
			Height: 30,
		},
		Physics: Physics{
			Gravity:      0.5,
			FlapStrength: -10,
		},
		Obstacles: Obstacles{
			Width:  60,
			Gap:    150,
			Speed:  2,
			Margin: 50,
		},
		Timing: Timing{
			TickPeriod:  20 * time.Millisecond,
			SpawnPeriod: 1500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
