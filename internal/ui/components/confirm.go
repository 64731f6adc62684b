/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/flightboard/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Confirm Dialog Component
// -----------------------------------------------------------------------------

// ConfirmAction is the board action awaiting confirmation.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmRestart
)

// ConfirmResult is returned once the user answers.
type ConfirmResult struct {
	Action    ConfirmAction
	Confirmed bool
}

// ConfirmDialog is a modal yes/no dialog.
type ConfirmDialog struct {
	visible bool
	action  ConfirmAction
	message string
	width   int
	height  int
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() ConfirmDialog {
	return ConfirmDialog{}
}

// Show displays the dialog for action.
func (c *ConfirmDialog) Show(action ConfirmAction, message string) {
	c.visible = true
	c.action = action
	c.message = message
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
	c.action = ConfirmNone
	c.message = ""
}

// IsVisible returns whether the dialog is showing.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// SetSize sets the area the dialog is centered in.
func (c *ConfirmDialog) SetSize(width, height int) {
	c.width = width
	c.height = height
}

var (
	confirmKey = key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y", "confirm"),
	)
	cancelKey = key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	)
)

// Update handles an answer. It reports true once the dialog has closed.
func (c *ConfirmDialog) Update(msg tea.Msg) (ConfirmResult, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !c.visible || !ok {
		return ConfirmResult{}, false
	}

	var confirmed bool
	switch {
	case key.Matches(km, confirmKey):
		confirmed = true
	case key.Matches(km, cancelKey):
	default:
		return ConfirmResult{}, false
	}
	result := ConfirmResult{Action: c.action, Confirmed: confirmed}
	c.Hide()
	return result, true
}

// View renders the dialog centered in its area.
func (c ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorWarning).
		Padding(1, 2).
		Width(40)

	var b strings.Builder
	b.WriteString(styles.PausedStyle.Bold(true).Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.ColorText).Render(c.message))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDescStyle.Render("[y] Yes    [n/esc] Cancel"))

	dialog := box.Render(b.String())
	if c.width > 0 && c.height > 0 {
		return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
