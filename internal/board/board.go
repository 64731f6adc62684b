/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package board holds what the flight board currently displays. It is the
// renderer the sequencer commits into, and it produces frames for the
// terminal front ends.
package board

import (
	"fmt"
	"time"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
)

// Board is the committed display state plus the transitions in flight.
// It is not safe for concurrent use.
type Board struct {
	catalog     Catalog
	fields      map[flight.Field]string
	background  Scene
	overlay     bool
	transitions []sequencer.Transition
	fades       []fade
}

// fade is an overlay fade and the level drawn when it began.
type fade struct {
	sequencer.Transition
	from float64
}

// New creates an empty board resolving backgrounds through c.
func New(c Catalog) *Board {
	if c == nil {
		c = DefaultCatalog()
	}
	return &Board{
		catalog: c,
		fields:  make(map[flight.Field]string, len(flight.Fields)),
	}
}

// RenderField implements sequencer.Renderer.
func (b *Board) RenderField(f flight.Field, text string) error {
	if !f.Valid() {
		return fmt.Errorf("field %d: %w", int(f), ErrUnknownField)
	}
	b.fields[f] = text
	return nil
}

// RenderBackground implements sequencer.Renderer.
func (b *Board) RenderBackground(key string) error {
	s, err := b.catalog.Resolve(key)
	if err != nil {
		return err
	}
	b.background = s
	return nil
}

// SetDecorativeVisibility implements sequencer.Renderer.
func (b *Board) SetDecorativeVisibility(visible bool) {
	b.overlay = visible
}

// Animate implements sequencer.Animator. An overlay fade starts from the
// level on screen, which may be partway through an earlier fade.
func (b *Board) Animate(t sequencer.Transition) {
	b.transitions = append(b.transitions, t)
	if t.Effect == sequencer.EffectOverlayFade {
		from := overlayLevel(b.overlay, b.fades, t.Start)
		b.fades = append(b.fades, fade{Transition: t, from: from})
	}
}

// Field returns the committed text of f.
func (b *Board) Field(f flight.Field) string {
	return b.fields[f]
}

// Background returns the committed background scene.
func (b *Board) Background() Scene {
	return b.background
}

// Overlay reports whether the weather overlay is committed visible.
func (b *Board) Overlay() bool {
	return b.overlay
}

// Frame snapshots the board at now and drops transitions that have finished.
func (b *Board) Frame(now time.Duration) Frame {
	live := b.transitions[:0]
	for _, t := range b.transitions {
		if !t.Done(now) {
			live = append(live, t)
		}
	}
	b.transitions = live

	fades := b.fades[:0]
	for _, f := range b.fades {
		if !f.Done(now) {
			fades = append(fades, f)
		}
	}
	b.fades = fades

	fields := make(map[flight.Field]string, len(b.fields))
	for f, v := range b.fields {
		fields[f] = v
	}
	active := make([]sequencer.Transition, len(live))
	copy(active, live)
	overlayFades := make([]fade, len(fades))
	copy(overlayFades, fades)

	return Frame{
		Now:         now,
		Fields:      fields,
		Background:  b.background,
		Overlay:     b.overlay,
		Transitions: active,
		catalog:     b.catalog,
		fades:       overlayFades,
	}
}

// Clear drops every in-flight transition, e.g. when the host restarts.
func (b *Board) Clear() {
	b.transitions = nil
	b.fades = nil
}
