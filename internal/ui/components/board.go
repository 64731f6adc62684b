/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package components provides reusable TUI components.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/ui/render"
	"github.com/ijuttt/flightboard/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Board Component
// -----------------------------------------------------------------------------

// BoardPanel draws one frame of the departures board.
type BoardPanel struct {
	view    app.View
	width   int
	height  int
	focused bool
}

// NewBoardPanel creates an empty board panel.
func NewBoardPanel() BoardPanel {
	return BoardPanel{}
}

// SetView replaces the frame to draw.
func (p *BoardPanel) SetView(v app.View) {
	p.view = v
}

// SetSize updates the outer dimensions.
func (p *BoardPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets the focus state.
func (p *BoardPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Title returns the panel title for the scene on display.
func (p BoardPanel) Title() string {
	from, to, _ := p.view.Frame.Scene()
	title := to.Title
	if title == "" {
		title = from.Title
	}
	if title == "" {
		return "Departures"
	}
	return "Departures · " + title
}

// View renders the panel.
func (p BoardPanel) View() string {
	inner := p.width - 4 // border and padding
	if inner < render.LaneWidth {
		inner = render.LaneWidth
	}

	var b strings.Builder
	b.WriteString(p.sky())
	b.WriteString(p.lane(inner))
	b.WriteString("\n\n")
	b.WriteString(p.fields())
	return styles.Panel(p.Title(), b.String(), p.width, p.height, p.focused)
}

// sky draws the scene art with the weather overlay on top.
func (p BoardPanel) sky() string {
	fr := p.view.Frame
	rows, tint := render.SkyRows(fr)
	level := 0.0
	if p.view.Effects {
		level = fr.OverlayLevel()
	}

	skyStyle := styles.SkyStyle(tint)
	var b strings.Builder
	for i, row := range rows {
		art := []rune(row)
		snow := []rune(render.SnowRow(i, len(art), level, fr.Now))
		for j, r := range art {
			if r == ' ' && j < len(snow) && snow[j] != ' ' {
				b.WriteString(styles.SnowStyle.Render(string(snow[j])))
				continue
			}
			b.WriteString(skyStyle.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// lane draws the runway with the plane sprite.
func (p BoardPanel) lane(width int) string {
	s := p.view.Frame.Sprite()
	col, ok := render.SpriteColumn(s, width)
	if !ok {
		return styles.LaneStyle.Render(strings.Repeat(render.LaneGlyph, width))
	}
	plane := styles.PlaneStyle
	if s.Alpha < 0.5 {
		plane = styles.FadedPlaneStyle
	}
	return styles.LaneStyle.Render(strings.Repeat(render.LaneGlyph, col)) +
		plane.Render(render.SpriteGlyph(s)) +
		styles.LaneStyle.Render(strings.Repeat(render.LaneGlyph, width-col-1))
}

// fields draws the flap rows and the summary line.
func (p BoardPanel) fields() string {
	fr := p.view.Frame
	label := styles.LabelStyle.Width(render.LabelWidth)

	var rows []string
	for _, f := range flight.Fields {
		if f == flight.FieldSummary {
			continue
		}
		text := render.FieldText(fr, f)
		style := styles.FlapStyle
		switch {
		case fr.Squash(f) < 0.35:
			style = styles.FlapEdgeStyle
		case fr.Lift(f) > 0.5:
			style = styles.LiftedStyle
		case f == flight.FieldStatus:
			style = styles.StatusStyle(text)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(render.Label(f)), style.Render(text)))
	}
	rows = append(rows, "", styles.SummaryStyle.Render(render.FieldText(fr, flight.FieldSummary)))
	return strings.Join(rows, "\n")
}

// EffectsEnd returns how long after the start of the current cycle the
// last running transition finishes, or zero when nothing is running.
func EffectsEnd(v app.View) time.Duration {
	if !v.Running || len(v.Frame.Transitions) == 0 {
		return 0
	}
	cycleStart := v.Frame.Now - (v.Interval - v.NextIn)
	var end time.Duration
	for _, t := range v.Frame.Transitions {
		if e := t.End() - cycleStart; e > end {
			end = e
		}
	}
	return end
}
