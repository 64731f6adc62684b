/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a horizontal bar, optionally with a marker cell.
type ProgressBar struct {
	Value       float64 // filled amount, 0..MaxValue
	MaxValue    float64
	Marker      float64 // drawn when ShowMarker is set
	Width       int
	FilledColor lipgloss.Color
	EmptyColor  lipgloss.Color
	MarkerColor lipgloss.Color
	ShowMarker  bool
}

// NewProgressBar creates a progress bar with default styling.
func NewProgressBar(value float64, width int) ProgressBar {
	return ProgressBar{
		Value:       value,
		MaxValue:    1,
		Width:       width,
		FilledColor: lipgloss.Color("214"), // Amber
		EmptyColor:  lipgloss.Color("238"),
		MarkerColor: lipgloss.Color("39"),
	}
}

// NewCountdown returns a bar that fills up as the next cycle approaches.
// Effects of the previous cycle still running are shown as a marker at the
// point where they finish.
func NewCountdown(remaining, interval, effects time.Duration, width int) ProgressBar {
	p := NewProgressBar(0, width).WithMax(float64(interval))
	if interval <= 0 {
		return p
	}
	p.Value = float64(interval - remaining)
	if effects > 0 {
		p = p.WithMarker(float64(effects))
	}
	return p
}

// WithMarker shows a marker at v.
func (p ProgressBar) WithMarker(v float64) ProgressBar {
	p.Marker = v
	p.ShowMarker = true
	return p
}

// WithMax sets the maximum value.
func (p ProgressBar) WithMax(max float64) ProgressBar {
	p.MaxValue = max
	return p
}

// Ratio returns the filled share in [0,1].
func (p ProgressBar) Ratio() float64 {
	if p.MaxValue <= 0 {
		return 0
	}
	return clamp01(p.Value / p.MaxValue)
}

// Render produces the bar string.
func (p ProgressBar) Render() string {
	if p.Width <= 0 || p.MaxValue <= 0 {
		return ""
	}

	filled := lipgloss.NewStyle().Foreground(p.FilledColor)
	empty := lipgloss.NewStyle().Foreground(p.EmptyColor)
	marker := lipgloss.NewStyle().Foreground(p.MarkerColor).Bold(true)

	filledWidth := int(p.Ratio() * float64(p.Width))
	markerAt := -1
	if p.ShowMarker {
		markerAt = int(clamp01(p.Marker/p.MaxValue) * float64(p.Width))
		if markerAt >= p.Width {
			markerAt = p.Width - 1
		}
	}

	var b strings.Builder
	for i := 0; i < p.Width; i++ {
		switch {
		case i == markerAt:
			b.WriteString(marker.Render("│"))
		case i < filledWidth:
			b.WriteString(filled.Render("█"))
		default:
			b.WriteString(empty.Render("░"))
		}
	}
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
