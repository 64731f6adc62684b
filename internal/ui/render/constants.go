// Package render draws board frames as plain text, with or without ANSI
// color. The gocui host and the headless host use it directly; the Bubble Tea
// components reuse its geometry helpers and style the pieces with lipgloss.
package render

import "time"

// -----------------------------------------------------------------------------
// Display Limits
// -----------------------------------------------------------------------------

const (
	// LaneWidth is the default width of the sprite lane in cells.
	LaneWidth = 30

	// LabelWidth is the width of field labels.
	LabelWidth = 12

	// SnowDensity is the share of sky cells that carry a flake at full overlay.
	SnowDensity = 0.18

	// SnowStep is how often the snow pattern drifts down one row.
	SnowStep = 250 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Glyphs
// -----------------------------------------------------------------------------

const (
	PlaneGlyph  = "✈"
	BankedGlyph = "➚"
	LaneGlyph   = "─"
	SnowGlyph   = "*"
	FlapEdge    = "▬"
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// SectionHeaderFormat is the format for section titles.
	SectionHeaderFormat = "%s=== %s ===%s\n"

	// FieldFormat lays out one label and value.
	FieldFormat = "%-*s %s\n"
)
