/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package sequencer

import (
	"time"

	"github.com/ijuttt/flightboard/internal/flight"
)

// Renderer is the boundary between the sequencer and whatever draws the board.
// Each call commits a visible change.
type Renderer interface {
	// RenderField commits new text for a display field.
	RenderField(f flight.Field, text string) error
	// RenderBackground swaps the background asset.
	RenderBackground(assetKey string) error
	// SetDecorativeVisibility shows or hides the weather overlay.
	SetDecorativeVisibility(visible bool)
}

// Animator is implemented by renderers that draw intermediate frames. The
// sequencer describes every effect it starts; commits still arrive through
// Renderer at the effect's commit point.
type Animator interface {
	Animate(t Transition)
}

// -----------------------------------------------------------------------------
// Transitions
// -----------------------------------------------------------------------------

// Effect identifies a kind of transition.
type Effect int

const (
	EffectCrossfade Effect = iota
	EffectOverlayFade
	EffectSlide
	EffectFlip
	EffectDepart
	EffectBounce
)

func (e Effect) String() string {
	switch e {
	case EffectCrossfade:
		return "crossfade"
	case EffectOverlayFade:
		return "overlay-fade"
	case EffectSlide:
		return "slide"
	case EffectFlip:
		return "flip"
	case EffectDepart:
		return "depart"
	case EffectBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// Keyframe is one step of a keyframed effect, expressed as fractions of the
// effect's duration.
type Keyframe struct {
	Name     string
	Start    float64
	Duration float64
}

// End returns the fraction at which the keyframe completes.
func (k Keyframe) End() float64 {
	return k.Start + k.Duration
}

// Progress maps an effect-level fraction to this keyframe's own [0,1] progress.
func (k Keyframe) Progress(p float64) float64 {
	if k.Duration <= 0 {
		if p >= k.Start {
			return 1
		}
		return 0
	}
	return clamp((p - k.Start) / k.Duration)
}

// Transition describes one running effect.
type Transition struct {
	Effect    Effect
	Field     flight.Field // text effects only
	From      string       // old text or background key
	To        string       // new text or background key
	Visible   bool         // overlay target, EffectOverlayFade only
	Start     time.Duration
	Duration  time.Duration
	Keyframes []Keyframe
}

// End returns the scheduler time the transition completes at.
func (t Transition) End() time.Duration {
	return t.Start + t.Duration
}

// Progress returns how far the transition is at now, in [0,1].
func (t Transition) Progress(now time.Duration) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return clamp(float64(now-t.Start) / float64(t.Duration))
}

// Done reports whether the transition has completed at now.
func (t Transition) Done(now time.Duration) bool {
	return now >= t.End()
}

// IsText reports whether the transition targets a text field.
func (t Transition) IsText() bool {
	switch t.Effect {
	case EffectSlide, EffectFlip, EffectBounce:
		return true
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
