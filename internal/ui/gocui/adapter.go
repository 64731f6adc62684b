/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gocui provides the gocui-based TUI implementation.
package gocui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/ui/render"
	lib "github.com/jroimartin/gocui"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewHeader   = "header"
	ViewBoard    = "board"
	ViewRotation = "rotation"
	ViewFooter   = "footer"
)

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui. A ticker goroutine posts every frame
// to the gocui main loop, which advances the board clock and redraws.
type Adapter struct {
	gui    *lib.Gui
	state  *app.State
	layout *Layout
	frame  time.Duration
	status string

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a new gocui adapter.
func New(frame time.Duration) (*Adapter, error) {
	g, err := lib.NewGui(lib.Output256)
	if err != nil {
		return nil, err
	}
	g.Cursor = false
	if frame <= 0 {
		frame = time.Second / 30
	}
	return &Adapter{gui: g, frame: frame, done: make(chan struct{})}, nil
}

// Run implements ui.UI.
func (a *Adapter) Run(state *app.State) error {
	a.state = state
	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}
	if err := state.Start(); err != nil {
		return err
	}
	defer state.Stop()

	go a.tickLoop()
	defer a.stopTicker()

	err := a.gui.MainLoop()
	if errors.Is(err, lib.ErrQuit) {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	a.stopTicker()
	a.gui.Close()
}

func (a *Adapter) stopTicker() {
	a.stopOnce.Do(func() { close(a.done) })
}

// tickLoop feeds wall-clock deltas to the main loop.
func (a *Adapter) tickLoop() {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.done:
			return
		case now := <-ticker.C:
			d := now.Sub(last)
			last = now
			a.gui.Update(func(*lib.Gui) error {
				a.advance(d)
				return nil
			})
		}
	}
}

// advance moves the board clock by one frame.
func (a *Adapter) advance(elapsed time.Duration) {
	a.state.TickFrame(elapsed)
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

// layoutManager creates and updates all views.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY)

	if err := a.setupView(g, ViewHeader, "", a.layout.HeaderBounds); err != nil {
		return err
	}
	if err := a.setupView(g, ViewBoard, " Departures ", a.layout.BoardPanelBounds); err != nil {
		return err
	}
	if a.layout.HasRotation() {
		if err := a.setupView(g, ViewRotation, " Rotation ", a.layout.RotationPanelBounds); err != nil {
			return err
		}
	} else if err := g.DeleteView(ViewRotation); err != nil && !errors.Is(err, lib.ErrUnknownView) {
		return err
	}
	if err := a.setupView(g, ViewFooter, "", a.layout.FooterBounds); err != nil {
		return err
	}

	return a.renderAll()
}

// setupView creates or moves a view. Views without a title are frameless.
func (a *Adapter) setupView(g *lib.Gui, name, title string, bounds func() (int, int, int, int)) error {
	x0, y0, x1, y1 := bounds()
	v, err := g.SetView(name, x0, y0, x1, y1)
	if err != nil && !errors.Is(err, lib.ErrUnknownView) {
		return err
	}
	v.Title = title
	v.Frame = title != ""
	return nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// renderAll updates all view contents.
func (a *Adapter) renderAll() error {
	v := a.state.Snapshot()

	if view, err := a.gui.View(ViewHeader); err == nil {
		view.Clear()
		fmt.Fprintf(view, "%s✈ Flight Board%s  %s", render.Bold, render.Reset, render.Status(v))
		if a.status != "" {
			fmt.Fprintf(view, " | %s", a.status)
		}
		fmt.Fprintln(view)
	}

	if view, err := a.gui.View(ViewBoard); err == nil {
		view.Clear()
		if a.layout.IsTerminalTooSmall() {
			fmt.Fprintln(view, "Terminal too small")
		} else {
			fmt.Fprint(view, render.Board(v.Frame, v.Effects, true))
		}
	}

	if view, err := a.gui.View(ViewRotation); err == nil {
		view.Clear()
		fmt.Fprint(view, rotationText(a.state))
	}

	if view, err := a.gui.View(ViewFooter); err == nil {
		view.Clear()
		fmt.Fprint(view, render.Help())
	}

	return nil
}

// rotationText lists the records with the one on display marked.
func rotationText(state *app.State) string {
	current := state.Current().ID
	var b strings.Builder
	for _, r := range state.Rotation() {
		marker := "  "
		if r.ID == current {
			marker = render.Yellow + "● " + render.Reset
		}
		fmt.Fprintf(&b, "%s%-8s %s→%s\n", marker, r.Identifier, r.Origin, r.Destination)
	}
	return b.String()
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// setupBindings configures keybindings.
func (a *Adapter) setupBindings() error {
	bindings := []struct {
		key     interface{}
		handler func(*lib.Gui, *lib.View) error
	}{
		{lib.KeyCtrlC, a.quit},
		{'q', a.quit},
		{lib.KeySpace, a.togglePause},
		{'p', a.togglePause},
		{'e', a.toggleEffects},
		{'r', a.restart},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding("", b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

// Failures are reported in the header; board errors also reach it through
// the snapshot. Handlers never abort the main loop.

func (a *Adapter) togglePause(g *lib.Gui, v *lib.View) error {
	if err := a.state.TogglePause(); err != nil {
		a.status = "Failed to resume"
		return nil
	}
	if a.state.Snapshot().Running {
		a.status = "Resumed"
	} else {
		a.status = "Paused"
	}
	return nil
}

func (a *Adapter) toggleEffects(g *lib.Gui, v *lib.View) error {
	if err := a.state.ToggleEffects(); err != nil {
		a.status = "Failed to save effects setting"
		return nil
	}
	if a.state.Snapshot().Effects {
		a.status = "Effects on"
	} else {
		a.status = "Effects off"
	}
	return nil
}

func (a *Adapter) restart(g *lib.Gui, v *lib.View) error {
	if err := a.state.Restart(); err != nil {
		a.status = "Restart failed"
		return nil
	}
	a.status = "Restarted"
	return nil
}
