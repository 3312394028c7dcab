package whack

import "github.com/charmbracelet/log"

// ScoreTracker keeps the session score and mirrors it to the display.
type ScoreTracker struct {
	display Display
	logger  *log.Logger
}

// NewScoreTracker creates a tracker writing to display.
func NewScoreTracker(display Display, logger *log.Logger) ScoreTracker {
	return ScoreTracker{display: display, logger: logger}
}

// Reset zeroes the score.
func (t ScoreTracker) Reset(s *Session) int {
	s.Score = 0
	t.publish(s.Score)
	return s.Score
}

// Increment adds one point and returns the new score.
func (t ScoreTracker) Increment(s *Session) int {
	s.Score++
	t.publish(s.Score)
	return s.Score
}

func (t ScoreTracker) publish(points int) {
	if err := t.display.ShowScore(points); err != nil {
		t.logger.Warn("score display failed", "score", points, "error", err)
	}
}
