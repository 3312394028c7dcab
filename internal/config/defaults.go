package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the default configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Game: GameConfig{
			Duration: 10,
			Holes:    9,
			Columns:  3,
			TickRate: 30,
		},
		Difficulty: DifficultyConfig{
			Level:          DifficultyHard,
			EasyDelayMS:    1500,
			NormalDelayMS:  1000,
			HardMinDelayMS: 600,
			HardMaxDelayMS: 1200,
		},
		Sound: SoundConfig{
			HitBell: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWhackYAML
}
