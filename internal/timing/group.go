/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package timing

import "time"

// Group registers timers on a Scheduler and can cancel all of them at once.
// The sequencer uses one Group per cycle for its effect timers.
type Group struct {
	s      Scheduler
	timers []*Timer
}

// NewGroup creates a group on s.
func NewGroup(s Scheduler) *Group {
	return &Group{s: s}
}

// After registers fn on the underlying scheduler and tracks the timer.
func (g *Group) After(d time.Duration, fn func()) *Timer {
	t := g.s.After(d, fn)
	g.timers = append(g.timers, t)
	return t
}

// Stop cancels every timer of the group that has not fired yet and returns
// how many were cancelled.
func (g *Group) Stop() int {
	n := 0
	for _, t := range g.timers {
		if t.Stop() {
			n++
		}
	}
	g.timers = nil
	return n
}

// Active returns the number of group timers still waiting to fire.
func (g *Group) Active() int {
	n := 0
	for _, t := range g.timers {
		if t.Active() {
			n++
		}
	}
	return n
}
