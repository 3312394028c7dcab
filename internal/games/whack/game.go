// Package whack implements a whack-a-mole game.
// Moles pop up one at a time in a grid of holes; the player scores by
// hitting the mole before it ducks back down, until the countdown runs out.
package whack

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/audio"
	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// ID is the identifier used for score storage.
const ID = "whack"

// HUD is the on-screen score and timer readout.
type HUD struct {
	score     int
	remaining int
}

// ShowScore implements Display.
func (h *HUD) ShowScore(points int) error {
	h.score = points
	return nil
}

// ShowTime implements Display.
func (h *HUD) ShowTime(seconds int) error {
	h.remaining = seconds
	return nil
}

// ScoreText returns the score as displayed.
func (h *HUD) ScoreText() string {
	return strconv.Itoa(h.score)
}

// TimeText returns the remaining time as displayed.
func (h *HUD) TimeText() string {
	return strconv.Itoa(h.remaining)
}

// StartButton is the title-screen start prompt.
type StartButton struct {
	enabled bool
}

// SetEnabled implements Affordance.
func (b *StartButton) SetEnabled(enabled bool) error {
	b.enabled = enabled
	return nil
}

// Enabled reports whether pressing confirm starts a game.
func (b *StartButton) Enabled() bool {
	return b.enabled
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger passed to the controller.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithHitSound sets the sink played on every hit.
func WithHitSound(s audio.Sink) Option {
	return func(g *Game) { g.hitSound = s }
}

// WithMusic sets the background sink played while a game runs.
func WithMusic(s audio.Sink) Option {
	return func(g *Game) { g.music = s }
}

// Game adapts the controller to the arcade tick loop.
type Game struct {
	cfg      config.WhackConfig
	runtime  core.RuntimeConfig
	queue    *sched.Queue
	ctrl     *Controller
	hud      *HUD
	button   *StartButton
	logger   *log.Logger
	hitSound audio.Sink
	music    audio.Sink

	paused   bool
	gameOver bool
	finished bool // set on the tick a game ends
	last     Session
	best     int
	layout   []core.Rect
	layoutW  int
	layoutH  int
}

// New creates a game for cfg. Call Reset before the first Step.
func New(cfg config.WhackConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		queue:  sched.New(),
		hud:    &HUD{},
		button: &StartButton{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Whack-a-Mole"
}

// Reset discards any game in progress and returns to the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = g.cfg.Game.TickRate
	}
	g.runtime = cfg
	g.queue.Reset()
	g.hud = &HUD{}
	g.button = &StartButton{}

	g.ctrl = NewController(g.cfg, g.queue, NewRandomSource(cfg.Seed), Collaborators{
		Display:  g.hud,
		Button:   g.button,
		HitSound: g.hitSound,
		Music:    g.music,
	}, g.logger)
	g.ctrl.OnFinish(g.handleFinish)
	g.ctrl.SetDuration(g.cfg.Game.Duration)
	g.ctrl.Stop()

	g.paused = false
	g.gameOver = false
	g.finished = false
	g.last = Session{}
	g.layout = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.finished = false

	if in.Has(core.ActionConfirm) && g.button.Enabled() {
		if _, err := g.ctrl.Start(); err != nil {
			g.logger.Error("cannot start game", "error", err)
		} else {
			g.gameOver = false
			g.paused = false
		}
	}

	if in.Has(core.ActionPause) && g.ctrl.Running() {
		g.paused = !g.paused
	}

	if !g.paused {
		for _, i := range in.Selects {
			g.ctrl.Field().Click(i)
		}
		g.queue.Advance(g.tickDuration())
	}

	return core.StepResult{State: g.State(), Finished: g.finished}
}

func (g *Game) tickDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}

func (g *Game) handleFinish(s Session) {
	g.gameOver = true
	g.finished = true
	g.paused = false
	g.last = s
	if s.Score > g.best {
		g.best = s.Score
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	running := false
	if g.ctrl != nil {
		score = g.ctrl.Session().Score
		running = g.ctrl.Running()
	}
	return core.GameState{
		Score:    score,
		Running:  running,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SetBest sets the best score shown in the HUD, e.g. loaded from storage.
func (g *Game) SetBest(score int) {
	if score > g.best {
		g.best = score
	}
}

// Best returns the best score seen.
func (g *Game) Best() int {
	return g.best
}

// LastSession returns the session of the most recently finished game.
func (g *Game) LastSession() Session {
	return g.last
}

// Difficulty returns the configured level.
func (g *Game) Difficulty() config.Difficulty {
	return g.cfg.Difficulty.Level
}

// Duration returns the configured game length in seconds.
func (g *Game) Duration() int {
	return g.cfg.Game.Duration
}

// Controller exposes the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// HUD exposes the score and timer readout.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Button exposes the start prompt.
func (g *Game) Button() *StartButton {
	return g.button
}

// HoleAt returns the hole drawn at screen cell (x, y) in the last render.
func (g *Game) HoleAt(x, y int) (int, bool) {
	for i, r := range g.layout {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
