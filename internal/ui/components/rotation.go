/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Key Bindings (local to avoid import cycle)
// -----------------------------------------------------------------------------

var (
	keyUp = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	keyDown = key.NewBinding(
		key.WithKeys("down", "j"),
	)
)

// -----------------------------------------------------------------------------
// Rotation Component
// -----------------------------------------------------------------------------

// Rotation lists the records the board cycles through and previews the one
// under the cursor.
type Rotation struct {
	records []flight.Record
	current flight.RecordID
	cursor  int
	width   int
	height  int
	focused bool
}

// NewRotation creates an empty rotation list.
func NewRotation() Rotation {
	return Rotation{}
}

// SetRecords updates the list.
func (r *Rotation) SetRecords(records []flight.Record) {
	r.records = records
	if r.cursor >= len(records) {
		r.cursor = max(0, len(records)-1)
	}
}

// SetCurrent marks the record on display.
func (r *Rotation) SetCurrent(id flight.RecordID) {
	r.current = id
}

// SetSize updates the component dimensions.
func (r *Rotation) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// SetFocused sets the focus state.
func (r *Rotation) SetFocused(focused bool) {
	r.focused = focused
}

// Cursor returns the cursor position.
func (r *Rotation) Cursor() int {
	return r.cursor
}

// Selected returns the record under the cursor.
func (r *Rotation) Selected() (flight.Record, bool) {
	if r.cursor >= 0 && r.cursor < len(r.records) {
		return r.records[r.cursor], true
	}
	return flight.Record{}, false
}

// Update moves the cursor.
func (r *Rotation) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			if r.cursor > 0 {
				r.cursor--
			}
		case key.Matches(msg, keyDown):
			if r.cursor < len(r.records)-1 {
				r.cursor++
			}
		}
	}
	return nil
}

// View renders the list.
func (r Rotation) View() string {
	var b strings.Builder

	if len(r.records) == 0 {
		b.WriteString(styles.DimItemStyle.Render("No flights"))
		return styles.Panel("Rotation", b.String(), r.width, r.height, r.focused)
	}

	for i, rec := range r.records {
		marker := "  "
		if rec.ID == r.current {
			marker = "● "
		}
		line := fmt.Sprintf("%s%-8s %s→%s", marker, rec.Identifier, rec.Origin, rec.Destination)
		if i == r.cursor && r.focused {
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if rec, ok := r.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(styles.DimItemStyle.Render(fmt.Sprintf("gate %s · %s", rec.Gate, rec.StatusText)))
		b.WriteString("\n")
		b.WriteString(styles.DimItemStyle.Render(rec.SummaryText))
	}

	return styles.Panel(fmt.Sprintf("Rotation (%d)", len(r.records)), b.String(), r.width, r.height, r.focused)
}
