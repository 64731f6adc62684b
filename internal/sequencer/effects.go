/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package sequencer

import (
	"time"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/timing"
)

// -----------------------------------------------------------------------------
// Effect Timing
// -----------------------------------------------------------------------------

const (
	// DefaultInterval is the re-arm delay, measured from the start of a cycle.
	DefaultInterval = 3 * time.Second

	CrossfadeDuration   = 500 * time.Millisecond
	OverlayFadeDuration = 1500 * time.Millisecond
	SlideDuration       = 500 * time.Millisecond
	FlipDuration        = 500 * time.Millisecond
	DepartDuration      = 1500 * time.Millisecond
	BounceDuration      = time.Second

	// BounceCommitDelay is when the summary text changes, independent of the
	// bounce animation's own completion.
	BounceCommitDelay = 500 * time.Millisecond
)

// DepartKeyframes moves the plane sprite off screen and back.
var DepartKeyframes = []Keyframe{
	{Name: "climb", Start: 0, Duration: 0.25},
	{Name: "bank", Start: 0.10, Duration: 0.40},
	{Name: "exit", Start: 0.25, Duration: 0.25},
	{Name: "reset", Start: 0.51, Duration: 0.01},
	{Name: "return", Start: 0.55, Duration: 0.45},
}

// BounceKeyframes lifts the summary label and drops it back.
var BounceKeyframes = []Keyframe{
	{Name: "rise", Start: 0, Duration: 0.5},
	{Name: "drop", Start: 0.5, Duration: 0.2},
}

// -----------------------------------------------------------------------------
// Effects
// -----------------------------------------------------------------------------

// animate registers the five effects of an animated cycle in one turn.
func (s *Sequencer) animate(prev, next flight.Record) {
	g := timing.NewGroup(s.sched)
	s.trackEffects(g)

	s.crossfade(g, prev, next)
	s.slide(g, flight.FieldOrigin, prev, next)
	s.slide(g, flight.FieldDestination, prev, next)
	s.flip(g, flight.FieldStatus, prev, next)
	s.depart()
	s.bounce(g, prev, next)
}

// crossfade fades the new background in and, in parallel, fades the weather
// overlay towards the new record's visibility.
func (s *Sequencer) crossfade(g *timing.Group, prev, next flight.Record) {
	now := s.sched.Now()
	s.notify(Transition{
		Effect:   EffectCrossfade,
		From:     prev.BackgroundKey,
		To:       next.BackgroundKey,
		Start:    now,
		Duration: CrossfadeDuration,
	})
	g.After(CrossfadeDuration, func() {
		if err := s.r.RenderBackground(next.BackgroundKey); err != nil {
			s.fail(err)
		}
	})

	s.notify(Transition{
		Effect:   EffectOverlayFade,
		Visible:  next.ShowsDecorativeEffect,
		Start:    now,
		Duration: OverlayFadeDuration,
	})
	g.After(OverlayFadeDuration, func() {
		s.r.SetDecorativeVisibility(next.ShowsDecorativeEffect)
	})
}

// slide moves the old text out while a copy with the new text moves in; the
// field itself changes when the slide completes.
func (s *Sequencer) slide(g *timing.Group, f flight.Field, prev, next flight.Record) {
	s.textEffect(g, EffectSlide, SlideDuration, f, prev, next)
}

// flip squashes the old text while the new text unfolds in its place.
func (s *Sequencer) flip(g *timing.Group, f flight.Field, prev, next flight.Record) {
	s.textEffect(g, EffectFlip, FlipDuration, f, prev, next)
}

func (s *Sequencer) textEffect(g *timing.Group, e Effect, d time.Duration, f flight.Field, prev, next flight.Record) {
	text := next.Text(f)
	s.notify(Transition{
		Effect:   e,
		Field:    f,
		From:     prev.Text(f),
		To:       text,
		Start:    s.sched.Now(),
		Duration: d,
	})
	g.After(d, func() {
		if err := s.r.RenderField(f, text); err != nil {
			s.fail(err)
		}
	})
}

// depart is cosmetic and commits nothing.
func (s *Sequencer) depart() {
	s.notify(Transition{
		Effect:    EffectDepart,
		Start:     s.sched.Now(),
		Duration:  DepartDuration,
		Keyframes: DepartKeyframes,
	})
}

// bounce lifts the summary label; its text is swapped at the top of the
// bounce by a separate timer rather than when the animation ends.
func (s *Sequencer) bounce(g *timing.Group, prev, next flight.Record) {
	text := next.SummaryText
	s.notify(Transition{
		Effect:    EffectBounce,
		Field:     flight.FieldSummary,
		From:      prev.SummaryText,
		To:        text,
		Start:     s.sched.Now(),
		Duration:  BounceDuration,
		Keyframes: BounceKeyframes,
	})
	g.After(BounceCommitDelay, func() {
		if err := s.r.RenderField(flight.FieldSummary, text); err != nil {
			s.fail(err)
		}
	})
}

func (s *Sequencer) notify(t Transition) {
	if s.anim != nil {
		s.anim.Animate(t)
	}
}

// trackEffects remembers g for Stop and forgets groups that have finished.
func (s *Sequencer) trackEffects(g *timing.Group) {
	live := s.effects[:0]
	for _, old := range s.effects {
		if old.Active() > 0 {
			live = append(live, old)
		}
	}
	s.effects = append(live, g)
}
