package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:  80,
			Height: 50,
		},
		Timing: Timing{
			FrameMs: 40,
		},
		Physics: Physics{
			Gravity:      0.1,
			MaxFallSpeed: 2.0,
			FlapImpulse:  -1.0,
		},
		Player: Player{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: Obstacles{
			GateSize:    40,
			MinGateSize: 10,
			Margin:      5,
		},
		Spawn: Spawn{
			Policy:     SpawnPerTick,
			EveryTicks: 1,
			Chance:     13,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
