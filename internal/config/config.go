// Package config provides YAML-based configuration loading, environment
// overrides and difficulty levels for the whack-a-mole game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDifficulty is returned for a difficulty name that is not one of
// easy, normal or hard.
var ErrInvalidDifficulty = errors.New("invalid difficulty level")

// WhackConfig contains all configuration for the game.
type WhackConfig struct {
	Game       GameConfig       `yaml:"game" envPrefix:"GAME_"`
	Difficulty DifficultyConfig `yaml:"difficulty" envPrefix:"DIFFICULTY_"`
	Sound      SoundConfig      `yaml:"sound" envPrefix:"SOUND_"`
}

// GameConfig defines the play field and session length.
type GameConfig struct {
	Duration int `yaml:"duration" env:"DURATION"`   // Seconds per game
	Holes    int `yaml:"holes" env:"HOLES"`         // Number of holes
	Columns  int `yaml:"columns" env:"COLUMNS"`     // Holes per row
	TickRate int `yaml:"tick_rate" env:"TICK_RATE"` // Simulation ticks per second
}

// DifficultyConfig defines how long a mole stays up at each level.
type DifficultyConfig struct {
	Level          Difficulty `yaml:"level" env:"LEVEL"`
	EasyDelayMS    int        `yaml:"easy_delay_ms" env:"EASY_DELAY_MS"`
	NormalDelayMS  int        `yaml:"normal_delay_ms" env:"NORMAL_DELAY_MS"`
	HardMinDelayMS int        `yaml:"hard_min_delay_ms" env:"HARD_MIN_DELAY_MS"`
	HardMaxDelayMS int        `yaml:"hard_max_delay_ms" env:"HARD_MAX_DELAY_MS"`
}

// SoundConfig toggles optional audio accompaniment.
type SoundConfig struct {
	HitBell bool `yaml:"hit_bell" env:"HIT_BELL"` // Ring the terminal bell on a hit
}

// DurationTime returns the game length as a time.Duration.
func (c GameConfig) DurationTime() time.Duration {
	return time.Duration(c.Duration) * time.Second
}

// Validate checks the configuration for values the game cannot run with.
func (c WhackConfig) Validate() error {
	if c.Game.Duration <= 0 {
		return fmt.Errorf("config: game.duration must be positive, got %d", c.Game.Duration)
	}
	// A single hole can never produce a target different from the last one.
	if c.Game.Holes < 2 {
		return fmt.Errorf("config: game.holes must be at least 2, got %d", c.Game.Holes)
	}
	if c.Game.Columns <= 0 {
		return fmt.Errorf("config: game.columns must be positive, got %d", c.Game.Columns)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: game.tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if !c.Difficulty.Level.Valid() {
		return fmt.Errorf("config: %w: %q", ErrInvalidDifficulty, c.Difficulty.Level)
	}
	d := c.Difficulty
	if d.EasyDelayMS <= 0 || d.NormalDelayMS <= 0 || d.HardMinDelayMS <= 0 {
		return errors.New("config: difficulty delays must be positive")
	}
	if d.HardMinDelayMS > d.HardMaxDelayMS {
		return fmt.Errorf("config: hard_min_delay_ms (%d) exceeds hard_max_delay_ms (%d)",
			d.HardMinDelayMS, d.HardMaxDelayMS)
	}
	return nil
}

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns every level in increasing order of difficulty.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// Matching ignores case and surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is a known level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the level name.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns the capitalized level name for display.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// UnmarshalText lets YAML and environment values be parsed and validated.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
