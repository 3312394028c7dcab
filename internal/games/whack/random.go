package whack

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidRange is returned when a random integer is requested from an
// empty range.
var ErrInvalidRange = errors.New("invalid range")

// RandomSource produces uniformly distributed integers.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded for reproducible games.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Integer returns a value in [min, max], both inclusive.
func (r *RandomSource) Integer(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	return min + r.rng.Intn(max-min+1), nil
}
