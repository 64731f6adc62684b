/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package styles provides Lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	// Airport signage: amber flaps on a near-black board
	ColorPrimary   = lipgloss.Color("214") // Amber
	ColorSecondary = lipgloss.Color("238") // Dark Gray (Borders)
	ColorAccent    = lipgloss.Color("39")  // Sky Blue
	ColorSuccess   = lipgloss.Color("46")  // Green (Boarding)
	ColorWarning   = lipgloss.Color("208") // Orange (Delayed)
	ColorDanger    = lipgloss.Color("196") // Bright Red
	ColorMuted     = lipgloss.Color("60")  // Cool Gray
	ColorDarkGray  = lipgloss.Color("240")
	ColorSnow      = lipgloss.Color("255")

	// Text colors
	ColorText        = lipgloss.Color("255")
	ColorTextDim     = lipgloss.Color("246")
	ColorTextBold    = lipgloss.Color("231")
	ColorBlack       = lipgloss.Color("16")
	ColorFlapBg      = lipgloss.Color("234") // flap tile background
	ColorStatusBarBg = lipgloss.Color("235")
)

// -----------------------------------------------------------------------------
// Panel Styles
// -----------------------------------------------------------------------------

var (
	// BasePanelStyle is the foundation style for all panels.
	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// ActivePanelStyle is used for the focused panel.
	ActivePanelStyle = BasePanelStyle.
				BorderForeground(ColorPrimary)

	// PanelTitleStyle styles the application title.
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Rotation List Styles
// -----------------------------------------------------------------------------

var (
	// SelectedItemStyle marks the record on display.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	// NormalItemStyle is for the other records.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	// DimItemStyle is for secondary text.
	DimItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Board Styles
// -----------------------------------------------------------------------------

var (
	// LabelStyle is for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Bold(true)

	// FlapStyle draws a field value on its flap tile.
	FlapStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorFlapBg).
			Bold(true).
			Padding(0, 1)

	// FlapEdgeStyle draws a flap caught edge-on mid flip.
	FlapEdgeStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray).
			Background(ColorFlapBg).
			Padding(0, 1)

	// LiftedStyle draws a value that is sliding or bouncing off its row.
	LiftedStyle = FlapStyle.
			Foreground(ColorTextDim).
			Faint(true)

	// SummaryStyle is for the date line under the fields.
	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// LaneStyle is the runway line the plane sprite moves along.
	LaneStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	// PlaneStyle draws the plane sprite.
	PlaneStyle = lipgloss.NewStyle().
			Foreground(ColorTextBold).
			Bold(true)

	// FadedPlaneStyle draws the sprite while it fades in or out.
	FadedPlaneStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SnowStyle draws the weather overlay.
	SnowStyle = lipgloss.NewStyle().
			Foreground(ColorSnow)
)

// StatusStyle returns the flap style for a status text.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Boarding":
		return FlapStyle.Foreground(ColorSuccess)
	case "Delayed":
		return FlapStyle.Foreground(ColorWarning)
	case "Cancelled":
		return FlapStyle.Foreground(ColorDanger)
	}
	return FlapStyle
}

// SkyStyle returns the style for sky art in the given 256-color tint.
func SkyStyle(tint string) lipgloss.Style {
	if tint == "" {
		return lipgloss.NewStyle().Foreground(ColorAccent)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tint))
}

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// HelpKeyStyle is for keyboard shortcut keys.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HelpDescStyle is for keyboard shortcut descriptions.
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// CycleStyle shows the Roman cycle counter.
	CycleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// -----------------------------------------------------------------------------
// Paused & Error Styles
// -----------------------------------------------------------------------------

var (
	// PausedStyle is shown while the board is stopped.
	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
