package whack

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// fakeDisplay records every value written and can be made to fail.
type fakeDisplay struct {
	scores []int
	times  []int
	err    error
}

func (d *fakeDisplay) ShowScore(points int) error {
	d.scores = append(d.scores, points)
	return d.err
}

func (d *fakeDisplay) ShowTime(seconds int) error {
	d.times = append(d.times, seconds)
	return d.err
}

func (d *fakeDisplay) lastScore() int {
	if len(d.scores) == 0 {
		return -1
	}
	return d.scores[len(d.scores)-1]
}

func (d *fakeDisplay) lastTime() int {
	if len(d.times) == 0 {
		return -1
	}
	return d.times[len(d.times)-1]
}

// fakeButton records the enabled state.
type fakeButton struct {
	enabled bool
	calls   int
	err     error
}

func (b *fakeButton) SetEnabled(enabled bool) error {
	b.enabled = enabled
	b.calls++
	return b.err
}

// fakeSink records capability calls and can be made to fail.
type fakeSink struct {
	plays, pauses, rewinds int
	err                    error
}

func (s *fakeSink) Name() string  { return "fake" }
func (s *fakeSink) Play() error   { s.plays++; return s.err }
func (s *fakeSink) Pause() error  { s.pauses++; return s.err }
func (s *fakeSink) Rewind() error { s.rewinds++; return s.err }

var errBroken = errors.New("collaborator broken")

// testConfig returns the default config at the given level.
func testConfig(level config.Difficulty) config.WhackConfig {
	cfg := config.DefaultWhackConfig()
	cfg.Difficulty.Level = level
	return cfg
}

type controllerFixture struct {
	ctrl    *Controller
	queue   *sched.Queue
	display *fakeDisplay
	button  *fakeButton
	hit     *fakeSink
	music   *fakeSink
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, cfg config.WhackConfig) *controllerFixture {
	t.Helper()
	f := &controllerFixture{
		queue:   sched.New(),
		display: &fakeDisplay{},
		button:  &fakeButton{},
		hit:     &fakeSink{},
		music:   &fakeSink{},
		logs:    &bytes.Buffer{},
	}
	logger := log.New(f.logs)
	logger.SetLevel(log.DebugLevel)
	f.ctrl = NewController(cfg, f.queue, NewRandomSource(42), Collaborators{
		Display:  f.display,
		Button:   f.button,
		HitSound: f.hit,
		Music:    f.music,
	}, logger)
	return f
}

// advance moves time forward in small steps, checking that no more than
// one mole is ever visible.
func (f *controllerFixture) advance(t *testing.T, d time.Duration) {
	t.Helper()
	const step = 50 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		f.queue.Advance(step)
		if n := f.ctrl.Field().VisibleCount(); n > 1 {
			t.Fatalf("%d moles visible at %v", n, f.queue.Now())
		}
	}
}
