/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BuildTitledBorder returns b with title embedded in its top edge:
//
//	╭─ Departures ────────────╮
func BuildTitledBorder(title string, totalWidth int, b lipgloss.Border) lipgloss.Border {
	inner := totalWidth - lipgloss.Width(b.TopLeft) - lipgloss.Width(b.TopRight)
	if inner <= 0 || title == "" {
		return b
	}

	top := b.Top
	if top == "" {
		top = "─"
	}
	label := top + " " + title + " "
	rest := inner - lipgloss.Width(label)
	if rest < 0 {
		rest = 0
	}
	b.Top = label + strings.Repeat(top, rest)
	return b
}

// Panel renders body inside a rounded, titled panel of the given outer size.
func Panel(title, body string, width, height int, focused bool) string {
	style := BasePanelStyle
	if focused {
		style = ActivePanelStyle
	}
	if width <= 2 || height <= 2 {
		return style.Render(body)
	}
	return style.
		Border(BuildTitledBorder(title, width, lipgloss.RoundedBorder())).
		Width(width - 2).
		Height(height - 2).
		Render(body)
}
