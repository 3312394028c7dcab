package whack

import (
	"fmt"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/config"
)

// DelayPolicy maps a difficulty level to how long a mole stays up.
type DelayPolicy struct {
	rnd     *RandomSource
	easy    time.Duration
	normal  time.Duration
	hardMin int // milliseconds
	hardMax int // milliseconds
}

// NewDelayPolicy builds a policy from the difficulty section of the config.
func NewDelayPolicy(rnd *RandomSource, cfg config.DifficultyConfig) DelayPolicy {
	return DelayPolicy{
		rnd:     rnd,
		easy:    time.Duration(cfg.EasyDelayMS) * time.Millisecond,
		normal:  time.Duration(cfg.NormalDelayMS) * time.Millisecond,
		hardMin: cfg.HardMinDelayMS,
		hardMax: cfg.HardMaxDelayMS,
	}
}

// Delay returns the show duration for level.
// Hard is resampled on every call.
func (p DelayPolicy) Delay(level config.Difficulty) (time.Duration, error) {
	switch level {
	case config.DifficultyEasy:
		return p.easy, nil
	case config.DifficultyNormal:
		return p.normal, nil
	case config.DifficultyHard:
		ms, err := p.rnd.Integer(p.hardMin, p.hardMax)
		if err != nil {
			return 0, err
		}
		return time.Duration(ms) * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("%w: %q", config.ErrInvalidDifficulty, level)
	}
}
