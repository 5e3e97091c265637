package config

import (
	_ "embed"
)

//go:embed defaults/glider.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.25,
			Impulse:      -1.8,
			MaxFallSpeed: 3.0,
			Speed:        0.8,
		},
		Obstacles: Obstacles{
			Width:           5,
			Gap:             9,
			TopMargin:       2,
			BottomMargin:    2,
			SpawnIntervalMS: 1200,
		},
		Craft: Craft{
			Width:  2,
			Height: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
