package whack

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Countdown decrements the session's remaining time once per TickInterval.
// Reaching zero does not stop the interval; Stop must be called.
type Countdown struct {
	queue   *sched.Queue
	display Display
	logger  *log.Logger
	handle  sched.Handle
}

// NewCountdown creates a countdown armed on queue.
func NewCountdown(queue *sched.Queue, display Display, logger *log.Logger) *Countdown {
	return &Countdown{queue: queue, display: display, logger: logger}
}

// SetDuration sets the remaining time in seconds.
func (c *Countdown) SetDuration(s *Session, seconds int) int {
	s.Remaining = seconds
	c.publish(s.Remaining)
	return s.Remaining
}

// Tick decrements the remaining time if any is left.
// Returns the remaining time and whether it changed.
func (c *Countdown) Tick(s *Session) (int, bool) {
	if s.Remaining <= 0 {
		return s.Remaining, false
	}
	s.Remaining--
	c.publish(s.Remaining)
	return s.Remaining, true
}

// Start arms the tick interval, replacing any interval already running.
func (c *Countdown) Start(s *Session) sched.Handle {
	c.Stop(c.handle)
	c.handle = c.queue.Every(TickInterval, func() {
		c.Tick(s)
	})
	return c.handle
}

// Stop disarms the interval identified by h.
func (c *Countdown) Stop(h sched.Handle) bool {
	if h == c.handle {
		c.handle = 0
	}
	return c.queue.Cancel(h)
}

// Active reports whether an interval is armed.
func (c *Countdown) Active() bool {
	return c.handle != 0 && c.queue.Active(c.handle)
}

func (c *Countdown) publish(seconds int) {
	if err := c.display.ShowTime(seconds); err != nil {
		c.logger.Warn("timer display failed", "remaining", seconds, "error", err)
	}
}
