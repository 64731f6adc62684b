/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package sequencer drives the flight board: it alternates the displayed
// record on a fixed interval and choreographs the transition effects of each
// change.
//
// A Sequencer is owned by a single host loop. All of its state is touched only
// from Start, Stop and scheduler callbacks, so it holds no lock; a host that
// calls it from several goroutines must serialize those calls itself.
package sequencer

import (
	"io"
	"log/slog"
	"time"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/timing"
)

// Sequencer alternates the board between the records of a timetable.
type Sequencer struct {
	sched    timing.Scheduler
	r        Renderer
	anim     Animator
	table    *flight.Timetable
	seed     flight.Record
	interval time.Duration
	log      *slog.Logger
	onError  func(error)

	started bool
	current flight.Record
	pending *timing.Timer
	effects []*timing.Group
	cycles  int
}

// New creates a sequencer that schedules on sched and renders into r. If r
// also implements Animator it is told about every transition.
func New(sched timing.Scheduler, r Renderer) *Sequencer {
	table := flight.DefaultTimetable()
	s := &Sequencer{
		sched:    sched,
		r:        r,
		table:    table,
		seed:     table.Seed(),
		interval: DefaultInterval,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if a, ok := r.(Animator); ok {
		s.anim = a
	}
	return s
}

// WithTimetable replaces the timetable and resets the seed to its seed record.
func (s *Sequencer) WithTimetable(t *flight.Timetable) *Sequencer {
	s.table = t
	s.seed = t.Seed()
	return s
}

// WithSeed sets the record shown by Start. Unknown ids are ignored.
func (s *Sequencer) WithSeed(id flight.RecordID) *Sequencer {
	if r, ok := s.table.Lookup(id); ok {
		s.seed = r
	}
	return s
}

// WithInterval sets the re-arm delay. Non-positive values are ignored.
func (s *Sequencer) WithInterval(d time.Duration) *Sequencer {
	if d > 0 {
		s.interval = d
	}
	return s
}

// WithLogger sets the logger.
func (s *Sequencer) WithLogger(l *slog.Logger) *Sequencer {
	if l != nil {
		s.log = l
	}
	return s
}

// WithErrorHandler receives errors raised by effect callbacks. Without one
// they are logged at warn level.
func (s *Sequencer) WithErrorHandler(fn func(error)) *Sequencer {
	s.onError = fn
	return s
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start shows the seed record without animation and arms the first cycle.
// Calling Start on a running sequencer does nothing.
func (s *Sequencer) Start() error {
	if s.started {
		s.log.Debug("start ignored, sequencer already running", "record", s.current.ID)
		return nil
	}

	if err := s.show(s.seed); err != nil {
		return err
	}
	s.current = s.seed
	s.started = true
	s.cycles = 0
	s.arm()

	s.log.Info("sequencer started", "record", s.seed.ID, "interval", s.interval)
	return nil
}

// Stop cancels the pending cycle and every effect still in flight. It is
// safe to call more than once.
func (s *Sequencer) Stop() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	cancelled := 0
	for _, g := range s.effects {
		cancelled += g.Stop()
	}
	s.effects = nil

	if s.started {
		s.log.Info("sequencer stopped", "record", s.current.ID, "cycles", s.cycles, "cancelled_effects", cancelled)
	}
	s.started = false
}

// Running reports whether the sequencer has been started and not stopped.
func (s *Sequencer) Running() bool {
	return s.started
}

// Current returns the record the board is showing or moving towards.
func (s *Sequencer) Current() flight.Record {
	return s.current
}

// Cycles returns the number of cycles run since Start.
func (s *Sequencer) Cycles() int {
	return s.cycles
}

// NextCycle returns when the next cycle is due.
func (s *Sequencer) NextCycle() (time.Duration, bool) {
	if s.pending == nil || !s.pending.Active() {
		return 0, false
	}
	return s.pending.Due(), true
}

// Interval returns the re-arm delay.
func (s *Sequencer) Interval() time.Duration {
	return s.interval
}

// Rotation returns the records in the order the board shows them, starting
// at the seed and stopping before the first repeat.
func (s *Sequencer) Rotation() []flight.Record {
	seen := make(map[flight.RecordID]bool, s.table.Len())
	var out []flight.Record
	for r := s.seed; !seen[r.ID]; r = s.table.Next(r) {
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

// -----------------------------------------------------------------------------
// Cycle
// -----------------------------------------------------------------------------

// advance runs one cycle. It is only called by the re-arm timer.
func (s *Sequencer) advance(animated bool) {
	prev := s.current
	next := s.table.Next(prev)
	s.current = next
	s.cycles++

	s.log.Debug("cycle", "n", s.cycles, "from", prev.ID, "to", next.ID, "animated", animated)

	if animated {
		// Flight number and gate swap immediately, without an effect.
		for _, f := range []flight.Field{flight.FieldFlightNumber, flight.FieldGate} {
			if err := s.r.RenderField(f, next.Text(f)); err != nil {
				s.fail(err)
			}
		}
		s.animate(prev, next)
	} else if err := s.show(next); err != nil {
		s.fail(err)
	}

	s.arm()
}

// show renders every part of r synchronously.
func (s *Sequencer) show(r flight.Record) error {
	if err := s.r.RenderBackground(r.BackgroundKey); err != nil {
		return err
	}
	for _, f := range flight.Fields {
		if err := s.r.RenderField(f, r.Text(f)); err != nil {
			return err
		}
	}
	s.r.SetDecorativeVisibility(r.ShowsDecorativeEffect)
	return nil
}

// arm schedules the next animated cycle, replacing any pending one so that
// at most one re-arm timer exists.
func (s *Sequencer) arm() {
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = s.sched.After(s.interval, func() {
		s.pending = nil
		s.advance(true)
	})
}

func (s *Sequencer) fail(err error) {
	if s.onError != nil {
		s.onError(err)
		return
	}
	s.log.Warn("render failed", "record", s.current.ID, "error", err)
}
