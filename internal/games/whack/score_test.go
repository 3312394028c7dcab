package whack

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/sched"
)

func TestScoreTrackerReset(t *testing.T) {
	hud := &HUD{}
	tracker := NewScoreTracker(hud, log.New(&bytes.Buffer{}))
	s := &Session{Score: 17}

	if got := tracker.Reset(s); got != 0 {
		t.Errorf("Reset() = %d, expected 0", got)
	}
	if s.Score != 0 {
		t.Errorf("session score = %d, expected 0", s.Score)
	}
	if hud.ScoreText() != "0" {
		t.Errorf("display shows %q, expected \"0\"", hud.ScoreText())
	}
}

func TestScoreTrackerIncrement(t *testing.T) {
	d := &fakeDisplay{}
	tracker := NewScoreTracker(d, log.New(&bytes.Buffer{}))
	s := &Session{}
	tracker.Reset(s)

	for n := 1; n <= 5; n++ {
		if got := tracker.Increment(s); got != n {
			t.Fatalf("Increment() = %d, expected %d", got, n)
		}
		if d.lastScore() != n {
			t.Fatalf("display shows %d after %d hits", d.lastScore(), n)
		}
	}
}

func TestScoreTrackerDisplayFailure(t *testing.T) {
	var logs bytes.Buffer
	tracker := NewScoreTracker(&fakeDisplay{err: errBroken}, log.New(&logs))
	s := &Session{}

	if got := tracker.Increment(s); got != 1 {
		t.Errorf("Increment() with a broken display = %d, expected 1", got)
	}
	if !strings.Contains(logs.String(), "score display failed") {
		t.Errorf("display failure should be logged, got %q", logs.String())
	}
}

func TestCountdownTicks(t *testing.T) {
	d := &fakeDisplay{}
	c := NewCountdown(sched.New(), d, log.New(&bytes.Buffer{}))
	s := &Session{}

	if got := c.SetDuration(s, 10); got != 10 || s.Remaining != 10 {
		t.Fatalf("SetDuration(10) = %d, remaining %d", got, s.Remaining)
	}

	for i := 9; i >= 0; i-- {
		got, changed := c.Tick(s)
		if !changed || got != i {
			t.Fatalf("Tick() = (%d, %v), expected (%d, true)", got, changed, i)
		}
		if d.lastTime() != i {
			t.Fatalf("display shows %d, expected %d", d.lastTime(), i)
		}
	}

	for i := 0; i < 3; i++ {
		if got, changed := c.Tick(s); changed || got != 0 {
			t.Errorf("Tick() at zero = (%d, %v), expected no-op", got, changed)
		}
	}
}

func TestCountdownInterval(t *testing.T) {
	q := sched.New()
	c := NewCountdown(q, &fakeDisplay{}, log.New(&bytes.Buffer{}))
	s := &Session{}
	c.SetDuration(s, 10)

	h := c.Start(s)
	q.Advance(3 * time.Second)
	if s.Remaining != 7 {
		t.Errorf("remaining after 3s = %d, expected 7", s.Remaining)
	}

	q.Advance(20 * time.Second)
	if s.Remaining != 0 {
		t.Errorf("remaining after 23s = %d, expected 0", s.Remaining)
	}
	if !c.Active() {
		t.Error("interval should keep running until stopped")
	}

	if !c.Stop(h) {
		t.Error("Stop should disarm the interval")
	}
	if c.Active() {
		t.Error("countdown should be inactive after Stop")
	}
}

func TestCountdownRestartReplacesInterval(t *testing.T) {
	q := sched.New()
	c := NewCountdown(q, &fakeDisplay{}, log.New(&bytes.Buffer{}))
	s := &Session{}
	c.SetDuration(s, 10)

	c.Start(s)
	c.Start(s)
	q.Advance(2 * time.Second)

	if s.Remaining != 8 {
		t.Errorf("remaining = %d, expected 8 with a single interval", s.Remaining)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", q.Pending())
	}
}
