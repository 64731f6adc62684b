/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package board

import (
	"time"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
)

// -----------------------------------------------------------------------------
// Sprite Geometry
// -----------------------------------------------------------------------------

const (
	// SpriteHome is the plane's resting position as a fraction of the lane.
	SpriteHome = 0.2

	spriteClimb = 0.15
	spriteExit  = 0.65
)

// Sprite is the plane's position at one instant.
type Sprite struct {
	X      float64 // fraction of the lane width, may exceed 1 while off screen
	Alpha  float64
	Banked bool
}

// Frame is an immutable snapshot of the board for drawing.
type Frame struct {
	Now         time.Duration
	Fields      map[flight.Field]string
	Background  Scene
	Overlay     bool
	Transitions []sequencer.Transition

	catalog Catalog
	fades   []fade
}

// latest returns the most recently started transition matching keep.
// Overlapping cycles leave older transitions running underneath.
func (fr Frame) latest(keep func(sequencer.Transition) bool) (sequencer.Transition, bool) {
	for i := len(fr.Transitions) - 1; i >= 0; i-- {
		if keep(fr.Transitions[i]) {
			return fr.Transitions[i], true
		}
	}
	return sequencer.Transition{}, false
}

// Text returns what should be drawn for f right now. During a slide or flip
// the outgoing text shows for the first half and the incoming text for the
// second; the committed field only changes at completion.
func (fr Frame) Text(f flight.Field) string {
	t, ok := fr.latest(func(t sequencer.Transition) bool {
		return t.Field == f && (t.Effect == sequencer.EffectSlide || t.Effect == sequencer.EffectFlip)
	})
	if !ok {
		return fr.Fields[f]
	}
	if t.Progress(fr.Now) < 0.5 {
		return t.From
	}
	return t.To
}

// Lift returns how far f is displaced from its row, in [0,1], for slide and
// bounce effects. Positive values are upwards.
func (fr Frame) Lift(f flight.Field) float64 {
	t, ok := fr.latest(func(t sequencer.Transition) bool {
		return t.Field == f && (t.Effect == sequencer.EffectSlide || t.Effect == sequencer.EffectBounce)
	})
	if !ok {
		return 0
	}
	p := t.Progress(fr.Now)
	if t.Effect == sequencer.EffectSlide {
		// outgoing text leaves upwards, incoming arrives from above
		if p < 0.5 {
			return p * 2
		}
		return (1 - p) * 2
	}
	lift := 0.0
	for _, k := range t.Keyframes {
		switch k.Name {
		case "rise":
			lift += k.Progress(p)
		case "drop":
			lift -= k.Progress(p)
		}
	}
	return lift
}

// Squash returns the vertical scale of f during a flip, 1 when untouched.
func (fr Frame) Squash(f flight.Field) float64 {
	t, ok := fr.latest(func(t sequencer.Transition) bool {
		return t.Field == f && t.Effect == sequencer.EffectFlip
	})
	if !ok {
		return 1
	}
	p := t.Progress(fr.Now)
	if p < 0.5 {
		return 1 - p*2
	}
	return (p - 0.5) * 2
}

// Scene returns the background to draw and how far a crossfade towards it
// has progressed. Outside a crossfade the progress is 1.
func (fr Frame) Scene() (from, to Scene, progress float64) {
	t, ok := fr.latest(func(t sequencer.Transition) bool {
		return t.Effect == sequencer.EffectCrossfade
	})
	if !ok {
		return fr.Background, fr.Background, 1
	}
	next, err := fr.catalog.Resolve(t.To)
	if err != nil {
		return fr.Background, fr.Background, 1
	}
	return fr.Background, next, t.Progress(fr.Now)
}

// OverlayLevel returns the weather overlay's opacity in [0,1].
func (fr Frame) OverlayLevel() float64 {
	return overlayLevel(fr.Overlay, fr.fades, fr.Now)
}

// overlayLevel follows the newest fade started by at, from the level it
// began at towards its target.
func overlayLevel(committed bool, fades []fade, at time.Duration) float64 {
	for i := len(fades) - 1; i >= 0; i-- {
		f := fades[i]
		if f.Start > at {
			continue
		}
		target := 0.0
		if f.Visible {
			target = 1
		}
		return f.from + (target-f.from)*f.Progress(at)
	}
	if committed {
		return 1
	}
	return 0
}

// Sprite returns the plane's position, following the depart keyframes when a
// departure is running.
func (fr Frame) Sprite() Sprite {
	s := Sprite{X: SpriteHome, Alpha: 1}
	t, ok := fr.latest(func(t sequencer.Transition) bool {
		return t.Effect == sequencer.EffectDepart
	})
	if !ok {
		return s
	}
	p := t.Progress(fr.Now)
	for _, k := range t.Keyframes {
		kp := k.Progress(p)
		switch k.Name {
		case "climb":
			s.X += spriteClimb * kp
		case "bank":
			s.Banked = kp > 0
		case "exit":
			s.X += spriteExit * kp
			s.Alpha = 1 - kp
		case "reset":
			if kp >= 1 {
				s.X = 0
				s.Banked = false
			}
		case "return":
			if kp > 0 {
				s.X = SpriteHome * kp
				s.Alpha = kp
			}
		}
	}
	return s
}

// Animating reports whether any transition is running.
func (fr Frame) Animating() bool {
	return len(fr.Transitions) > 0
}
