/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package timing provides the single ordered callback scheduler the board
// runs on. Time is virtual: the host advances the queue from its own loop
// (a Bubble Tea tick, a gocui ticker, or a test), and every callback runs on
// the goroutine that advances it.
package timing

import (
	"container/heap"
	"time"
)

// Scheduler registers callbacks against a clock.
type Scheduler interface {
	// Now returns the elapsed time since the scheduler's epoch.
	Now() time.Duration
	// After runs fn once d has elapsed from Now.
	After(d time.Duration, fn func()) *Timer
}

// Timer is a single registered callback.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	index   int // position in the heap, -1 once removed
	q       *Queue
	stopped bool
	fired   bool
}

// Due returns the time the timer fires at.
func (t *Timer) Due() time.Duration {
	return t.due
}

// Stop cancels the timer. It returns false if the timer already fired or
// was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.q.timers, t.index)
	}
	return true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && !t.fired
}

// -----------------------------------------------------------------------------
// Queue
// -----------------------------------------------------------------------------

// Queue is a virtual-time Scheduler. Timers fire in due order; timers with
// the same due time fire in registration order.
//
// Queue is not safe for concurrent use. Hosts that touch it from more than
// one goroutine must serialize access (see app.State).
type Queue struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
}

// NewQueue creates an empty queue at time zero.
func NewQueue() *Queue {
	return &Queue{}
}

// Now implements Scheduler.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After implements Scheduler. Negative delays are treated as zero.
func (q *Queue) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &Timer{
		due: q.now + d,
		seq: q.seq,
		fn:  fn,
		q:   q,
	}
	heap.Push(&q.timers, t)
	return t
}

// AdvanceTo moves the clock to at, firing every timer due at or before it.
// Each callback observes Now equal to its own due time. Timers registered by
// a callback that fall inside the window fire in the same call.
// It returns the number of callbacks run. Moving backwards is a no-op.
func (q *Queue) AdvanceTo(at time.Duration) int {
	if at < q.now {
		return 0
	}

	fired := 0
	for len(q.timers) > 0 && q.timers[0].due <= at {
		t := heap.Pop(&q.timers).(*Timer)
		q.now = t.due
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
	q.now = at
	return fired
}

// Advance moves the clock forward by d.
func (q *Queue) Advance(d time.Duration) int {
	return q.AdvanceTo(q.now + d)
}

// Pending returns the number of timers waiting to fire.
func (q *Queue) Pending() int {
	return len(q.timers)
}

// -----------------------------------------------------------------------------
// Heap
// -----------------------------------------------------------------------------

type timerHeap []*Timer

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
	t := x.(*Timer)
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
