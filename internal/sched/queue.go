// Package sched provides a virtual-time timer queue.
// It stands in for a host event loop: callbacks are armed with After or Every
// and run only when the owner calls Advance, so all game logic executes on a
// single goroutine in a deterministic order.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies an armed timer. The zero Handle never refers to a timer.
type Handle uint64

// timer is a single armed callback.
type timer struct {
	handle   Handle
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	seq      uint64        // arming order, breaks ties between equal due times
	fn       func()
	index    int
}

// Queue holds armed timers ordered by due time.
// A Queue is not safe for concurrent use; it is owned by one event loop.
type Queue struct {
	now    time.Duration
	seq    uint64
	next   Handle
	timers timerHeap
	active map[Handle]*timer
}

// New creates an empty queue at virtual time zero.
func New() *Queue {
	return &Queue{
		active: make(map[Handle]*timer),
	}
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Pending returns the number of armed timers.
func (q *Queue) Pending() int {
	return len(q.active)
}

// Active reports whether h is still armed.
func (q *Queue) Active(h Handle) bool {
	_, ok := q.active[h]
	return ok
}

// After arms fn to run once, d after the current virtual time.
// Negative delays are treated as zero.
func (q *Queue) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return q.arm(d, 0, fn)
}

// Every arms fn to run every d, starting d from now.
// Panics if d is not positive.
func (q *Queue) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		panic("sched: non-positive interval")
	}
	return q.arm(d, d, fn)
}

func (q *Queue) arm(d, interval time.Duration, fn func()) Handle {
	q.next++
	q.seq++
	t := &timer{
		handle:   q.next,
		due:      q.now + d,
		interval: interval,
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.timers, t)
	q.active[t.handle] = t
	return t.handle
}

// Cancel disarms h. Returns false if h was not armed.
func (q *Queue) Cancel(h Handle) bool {
	t, ok := q.active[h]
	if !ok {
		return false
	}
	delete(q.active, h)
	if t.index >= 0 {
		heap.Remove(&q.timers, t.index)
	}
	return true
}

// Advance moves virtual time forward by d, running every callback that
// falls due in the window. Callbacks observe Now() equal to their due time.
// Returns the number of callbacks run.
func (q *Queue) Advance(d time.Duration) int {
	target := q.now + d
	fired := 0

	for len(q.timers) > 0 {
		t := q.timers[0]
		if t.due > target {
			break
		}
		heap.Pop(&q.timers)
		q.now = t.due

		if t.interval > 0 {
			// Re-arm before running so the callback can cancel itself.
			q.seq++
			t.due += t.interval
			t.seq = q.seq
			heap.Push(&q.timers, t)
		} else {
			delete(q.active, t.handle)
		}

		t.fn()
		fired++
	}

	q.now = target
	return fired
}

// Reset disarms every timer and rewinds virtual time to zero.
func (q *Queue) Reset() {
	q.now = 0
	q.timers = nil
	q.active = make(map[Handle]*timer)
}

// timerHeap implements heap.Interface ordered by (due, seq).
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
