package whack

import "github.com/vovakirdan/whack-arcade/internal/config"

// Session is the mutable state of one play-through.
// It is replaced wholesale each time a game starts.
type Session struct {
	Remaining  int       // Seconds left
	Score      int       // Points scored
	Last       *Location // Previous target, excluded from the next pick
	Difficulty config.Difficulty
}
