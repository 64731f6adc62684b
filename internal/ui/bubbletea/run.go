/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/flightboard/internal/app"
)

// Adapter implements ui.UI with a Bubble Tea program.
type Adapter struct {
	frame   time.Duration
	options []tea.ProgramOption
	program *tea.Program
}

// New creates an adapter that redraws every frame.
func New(frame time.Duration, opts ...tea.ProgramOption) *Adapter {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Adapter{frame: frame, options: opts}
}

// Run implements ui.UI. It starts the board, blocks until the user quits and
// stops the board again.
func (a *Adapter) Run(state *app.State) error {
	if err := state.Start(); err != nil {
		return err
	}
	defer state.Stop()

	a.program = tea.NewProgram(NewApp(state, a.frame), a.options...)
	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	if a.program != nil {
		a.program.Quit()
	}
}
