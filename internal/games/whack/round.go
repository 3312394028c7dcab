package whack

import (
	"errors"

	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// ErrNoTimeLeft is returned when a round is requested after the countdown
// has run out.
var ErrNoTimeLeft = errors.New("no time left")

// RoundState is the show/hide cycle position.
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundShowing
	RoundHidden
	RoundStopped
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case RoundIdle:
		return "Idle"
	case RoundShowing:
		return "Showing"
	case RoundHidden:
		return "Hidden"
	case RoundStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// RoundScheduler drives the show/hide cycle. Each round shows one mole,
// arms a hide callback for the round's delay and, when it fires, either
// begins the next round or stops the game.
type RoundScheduler struct {
	queue    *sched.Queue
	policy   DelayPolicy
	selector TargetSelector
	field    *Field
	session  *Session

	// stop ends the game when time has run out.
	stop func() Status
	// fail handles an error raised while arming a round from a callback.
	fail func(error)

	state   RoundState
	target  *Location
	pending sched.Handle
	gen     uint64 // bumped on cancel; stale callbacks compare against it
	rounds  int
}

// NewRoundScheduler wires a scheduler to the session it reads remaining
// time from.
func NewRoundScheduler(queue *sched.Queue, policy DelayPolicy, selector TargetSelector, field *Field, session *Session, stop func() Status, fail func(error)) *RoundScheduler {
	return &RoundScheduler{
		queue:    queue,
		policy:   policy,
		selector: selector,
		field:    field,
		session:  session,
		stop:     stop,
		fail:     fail,
	}
}

// State returns the current cycle position.
func (r *RoundScheduler) State() RoundState {
	return r.state
}

// Target returns the location shown in the current round, or nil.
func (r *RoundScheduler) Target() *Location {
	return r.target
}

// Pending returns the armed hide callback, or the zero Handle.
func (r *RoundScheduler) Pending() sched.Handle {
	return r.pending
}

// Rounds returns how many rounds have begun since the last Reset.
func (r *RoundScheduler) Rounds() int {
	return r.rounds
}

// BeginRound picks a delay and a target, shows the target and arms its
// hide callback.
func (r *RoundScheduler) BeginRound() (sched.Handle, error) {
	if r.session.Remaining <= 0 {
		return 0, ErrNoTimeLeft
	}
	delay, err := r.policy.Delay(r.session.Difficulty)
	if err != nil {
		return 0, err
	}
	target, err := r.selector.Choose(r.session, r.field.Locations())
	if err != nil {
		return 0, err
	}

	Toggle(target)
	r.target = target
	r.state = RoundShowing
	r.rounds++

	gen := r.gen
	r.pending = r.queue.After(delay, func() {
		r.expire(gen, target)
	})
	return r.pending, nil
}

// Dispatch begins another round while time remains, otherwise stops the
// game. It drives both the first round and every continuation.
func (r *RoundScheduler) Dispatch() (sched.Handle, Status, error) {
	if r.session.Remaining > 0 {
		h, err := r.BeginRound()
		if err != nil {
			return 0, StatusStopped, err
		}
		return h, StatusRunning, nil
	}
	r.state = RoundStopped
	return 0, r.stop(), nil
}

// expire hides the round's target and continues the cycle.
func (r *RoundScheduler) expire(gen uint64, target *Location) {
	if gen != r.gen {
		return
	}
	r.pending = 0
	Toggle(target)
	r.target = nil
	r.state = RoundHidden

	if _, _, err := r.Dispatch(); err != nil {
		r.fail(err)
	}
}

// Cancel disarms the pending hide callback and marks the cycle stopped.
// Callbacks armed before Cancel become no-ops.
func (r *RoundScheduler) Cancel() {
	if r.pending != 0 {
		r.queue.Cancel(r.pending)
		r.pending = 0
	}
	r.gen++
	r.target = nil
	r.state = RoundStopped
}

// Reset returns the scheduler to Idle for a new game.
func (r *RoundScheduler) Reset() {
	r.Cancel()
	r.state = RoundIdle
	r.rounds = 0
}
