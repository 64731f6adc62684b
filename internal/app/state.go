/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package app provides core application state and business logic.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ijuttt/flightboard/internal/board"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
	"github.com/ijuttt/flightboard/internal/settings"
	"github.com/ijuttt/flightboard/internal/timing"
)

// MaxTickStep caps how far one wall-clock frame moves the board clock, so a
// suspended terminal does not replay a burst of cycles on resume.
const MaxTickStep = time.Second

// Options configure a State.
type Options struct {
	Interval time.Duration
	Seed     flight.RecordID
	Store    settings.Store
	Logger   *slog.Logger

	// Wrap decorates the board renderer, e.g. with an events.Mirror.
	Wrap func(sequencer.Renderer) sequencer.Renderer
}

// State holds the application state in a thread-safe manner. The scheduler,
// sequencer and board underneath are single-threaded; every access goes
// through mu.
type State struct {
	mu      sync.Mutex
	queue   *timing.Queue
	board   *board.Board
	seq     *sequencer.Sequencer
	store   settings.Store
	log     *slog.Logger
	effects bool
	lastErr error
}

// View is what a front end needs to draw one frame.
type View struct {
	Frame    board.Frame
	Cycles   int
	Running  bool
	Effects  bool
	NextIn   time.Duration
	Interval time.Duration
	Err      error
}

// NewState creates the board, scheduler and sequencer.
func NewState(opts Options) *State {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store := opts.Store
	if store == nil {
		store = settings.NewMemory()
	}

	s := &State{
		queue:   timing.NewQueue(),
		board:   board.New(board.DefaultCatalog()),
		store:   store,
		log:     log,
		effects: settings.Bool(store, settings.KeyEffects, true),
	}

	var r sequencer.Renderer = s.board
	if opts.Wrap != nil {
		r = opts.Wrap(r)
	}

	s.seq = sequencer.New(s.queue, r).
		WithInterval(opts.Interval).
		WithLogger(log).
		WithErrorHandler(s.recordError)
	if opts.Seed != "" {
		s.seq.WithSeed(opts.Seed)
	}
	return s
}

// recordError is called by the sequencer with mu already held.
func (s *State) recordError(err error) {
	s.lastErr = err
	s.log.Warn("board effect failed", "error", err)
}

// Start shows the seed record and starts cycling.
func (s *State) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seq.Start(); err != nil {
		s.lastErr = err
		return fmt.Errorf("starting board: %w", err)
	}
	s.lastErr = nil
	return nil
}

// Stop cancels all pending board activity.
func (s *State) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Stop()
	s.board.Clear()
}

// TogglePause stops a running board or restarts a stopped one.
func (s *State) TogglePause() error {
	s.mu.Lock()
	running := s.seq.Running()
	s.mu.Unlock()

	if running {
		s.Stop()
		return nil
	}
	return s.Start()
}

// Restart stops the board and shows the seed record again.
func (s *State) Restart() error {
	s.Stop()
	return s.Start()
}

// Tick advances the board clock by d, running every callback that falls due.
func (s *State) Tick(d time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Advance(d)
}

// TickFrame advances the board clock by the wall-clock time since the last
// frame, at most MaxTickStep.
func (s *State) TickFrame(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return s.Tick(min(elapsed, MaxTickStep))
}

// ToggleEffects flips whether the weather overlay is drawn and persists the
// preference.
func (s *State) ToggleEffects() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.effects
	if err := s.store.Set(next, settings.KeyEffects); err != nil {
		s.lastErr = err
		return fmt.Errorf("saving %s: %w", settings.KeyEffects, err)
	}
	s.effects = next
	return nil
}

// Snapshot returns the current view.
func (s *State) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.queue.Now()
	v := View{
		Frame:    s.board.Frame(now),
		Cycles:   s.seq.Cycles(),
		Running:  s.seq.Running(),
		Effects:  s.effects,
		Interval: s.seq.Interval(),
		Err:      s.lastErr,
	}
	if due, ok := s.seq.NextCycle(); ok {
		v.NextIn = due - now
	}
	return v
}

// Rotation returns the records in display order.
func (s *State) Rotation() []flight.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Rotation()
}

// Current returns the record the board is showing or moving towards.
func (s *State) Current() flight.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Current()
}
