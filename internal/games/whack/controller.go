package whack

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/audio"
	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// Status is the completion signal returned by game transitions.
type Status string

const (
	StatusStarted Status = "game started"
	StatusRunning Status = "game running"
	StatusStopped Status = "game stopped"
)

// ErrAlreadyRunning is returned by Start while a game is in progress.
var ErrAlreadyRunning = errors.New("game already running")

// Controller owns the session and wires start, the round loop and stop.
type Controller struct {
	cfg       config.WhackConfig
	queue     *sched.Queue
	field     *Field
	session   Session
	score     ScoreTracker
	countdown *Countdown
	rounds    *RoundScheduler
	collab    Collaborators
	logger    *log.Logger

	timer    sched.Handle
	running  bool
	onFinish func(Session)
}

// NewController creates a controller whose timers are armed on queue.
// A nil logger discards output.
func NewController(cfg config.WhackConfig, queue *sched.Queue, rnd *RandomSource, collab Collaborators, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	collab = collab.withDefaults()

	c := &Controller{
		cfg:    cfg,
		queue:  queue,
		field:  NewField(cfg.Game.Holes),
		collab: collab,
		logger: logger,
	}
	c.session.Difficulty = cfg.Difficulty.Level
	c.score = NewScoreTracker(collab.Display, logger)
	c.countdown = NewCountdown(queue, collab.Display, logger)
	c.rounds = NewRoundScheduler(
		queue,
		NewDelayPolicy(rnd, cfg.Difficulty),
		NewTargetSelector(rnd),
		c.field,
		&c.session,
		c.Stop,
		c.failRound,
	)
	return c
}

// OnFinish registers fn to run each time a started game stops.
func (c *Controller) OnFinish(fn func(Session)) {
	c.onFinish = fn
}

// Start begins a new game: score reset, duration set, listeners attached,
// countdown armed and the first round shown.
func (c *Controller) Start() (Status, error) {
	if c.running {
		return StatusRunning, ErrAlreadyRunning
	}

	c.session = Session{Difficulty: c.cfg.Difficulty.Level}
	c.rounds.Reset()
	c.field.HideAll()

	c.score.Reset(&c.session)
	c.SetDuration(c.cfg.Game.Duration)
	c.SetListeners()
	c.timer = c.countdown.Start(&c.session)
	c.running = true

	_, status, err := c.rounds.Dispatch()
	if err != nil {
		c.logger.Error("cannot begin round", "error", err)
		c.Stop()
		return StatusStopped, err
	}
	if status == StatusStopped {
		// No time configured; Dispatch already stopped the game.
		return status, nil
	}

	c.setButton(false)
	audio.Start(c.logger, c.collab.Music)

	c.logger.Info("game started",
		"difficulty", c.session.Difficulty,
		"duration", c.session.Remaining,
		"holes", c.field.Len(),
	)
	return StatusStarted, nil
}

// Stop halts the countdown and the round loop, hides every mole and
// re-enables the start button. Safe to call at any time.
func (c *Controller) Stop() Status {
	c.countdown.Stop(c.timer)
	c.timer = 0
	c.rounds.Cancel()
	c.field.HideAll()

	wasRunning := c.running
	c.running = false

	c.setButton(true)
	audio.Halt(c.logger, c.collab.Music)

	if wasRunning {
		c.logger.Info("game stopped",
			"score", c.session.Score,
			"rounds", c.rounds.Rounds(),
		)
		if c.onFinish != nil {
			c.onFinish(c.session)
		}
	}
	return StatusStopped
}

// OnHit scores a hit on l. Every call scores; callers decide what counts
// as a hit.
func (c *Controller) OnHit(l *Location) int {
	points := c.score.Increment(&c.session)
	audio.Start(c.logger, c.collab.HitSound)

	if l != nil {
		c.logger.Debug("hit", "hole", l.Index, "score", points)
	}
	return points
}

// SetListeners attaches the hit handler to every hole.
// Repeated calls do not stack handlers.
func (c *Controller) SetListeners() *Field {
	c.field.SetListener(func(l *Location) {
		c.OnHit(l)
	})
	return c.field
}

// SetDuration sets the remaining time in seconds.
func (c *Controller) SetDuration(seconds int) int {
	return c.countdown.SetDuration(&c.session, seconds)
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Running reports whether a game is in progress.
func (c *Controller) Running() bool {
	return c.running
}

// Field returns the play field.
func (c *Controller) Field() *Field {
	return c.field
}

// Rounds returns the round scheduler.
func (c *Controller) Rounds() *RoundScheduler {
	return c.rounds
}

// Countdown returns the countdown timer.
func (c *Controller) Countdown() *Countdown {
	return c.countdown
}

// Difficulty returns the configured level.
func (c *Controller) Difficulty() config.Difficulty {
	return c.cfg.Difficulty.Level
}

func (c *Controller) failRound(err error) {
	c.logger.Error("cannot begin round", "error", err)
	c.Stop()
}

func (c *Controller) setButton(enabled bool) {
	if err := c.collab.Button.SetEnabled(enabled); err != nil {
		c.logger.Warn("start button update failed", "enabled", enabled, "error", err)
	}
}
