/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
//
// Frame ticks are delivered as messages, so the board clock, the sequencer
// and every effect callback run on the Update goroutine.
package bubbletea

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/numeral"
	"github.com/ijuttt/flightboard/internal/ui/components"
	"github.com/ijuttt/flightboard/internal/ui/styles"
	"github.com/ijuttt/flightboard/internal/ui/widgets"
)

// Panel identifiers
const (
	PanelBoard = iota
	PanelRotation
	PanelCount
)

const (
	// RotationWidth is the outer width of the rotation panel.
	RotationWidth = 32

	countdownWidth = 12
	activityWidth  = 16
)

// tickMsg is one frame.
type tickMsg time.Time

// App is the main application model.
type App struct {
	state *app.State

	// Components
	board    components.BoardPanel
	rotation components.Rotation
	confirm  components.ConfirmDialog
	help     help.Model
	activity *widgets.History

	// State
	view        app.View
	activePanel int
	statusMsg   string
	frame       time.Duration
	lastTick    time.Time

	// Layout
	width  int
	height int

	keys KeyMap
}

// NewApp creates a board view over state, redrawn every frame.
func NewApp(state *app.State, frame time.Duration) App {
	if frame <= 0 {
		frame = time.Second / 30
	}
	a := App{
		state:       state,
		board:       components.NewBoardPanel(),
		rotation:    components.NewRotation(),
		confirm:     components.NewConfirmDialog(),
		help:        help.New(),
		activity:    widgets.NewHistory(activityWidth),
		activePanel: PanelBoard,
		frame:       frame,
		keys:        DefaultKeyMap(),
		statusMsg:   "Ready",
	}
	a.rotation.SetRecords(state.Rotation())
	a.refresh()
	a.updateFocus()
	return a
}

// Init starts the frame clock.
func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.frame, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Frames keep coming while the dialog is up
	if t, ok := msg.(tickMsg); ok {
		a.advance(time.Time(t))
		return a, a.tick()
	}

	if a.confirm.IsVisible() {
		if result, handled := a.confirm.Update(msg); handled {
			if result.Confirmed && result.Action == components.ConfirmRestart {
				a.restart()
			} else {
				a.statusMsg = "Restart cancelled"
			}
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.updateComponentSizes()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Pause):
			if err := a.state.TogglePause(); err != nil {
				a.statusMsg = "Failed to resume"
			} else if a.state.Snapshot().Running {
				a.statusMsg = "Resumed"
			} else {
				a.statusMsg = "Paused"
			}

		case key.Matches(msg, a.keys.Effects):
			if err := a.state.ToggleEffects(); err != nil {
				a.statusMsg = "Failed to save effects setting"
			} else if a.state.Snapshot().Effects {
				a.statusMsg = "Effects on"
			} else {
				a.statusMsg = "Effects off"
			}

		case key.Matches(msg, a.keys.Restart):
			a.confirm.Show(components.ConfirmRestart, "Restart the board from its first flight?")

		case key.Matches(msg, a.keys.Tab):
			a.activePanel = (a.activePanel + 1) % PanelCount
			a.updateFocus()

		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.updateComponentSizes()

		default:
			if a.activePanel == PanelRotation {
				cmd := a.rotation.Update(msg)
				return a, cmd
			}
		}
		a.refresh()
	}

	return a, nil
}

// advance moves the board clock to the wall time of a frame.
func (a *App) advance(now time.Time) {
	if !a.lastTick.IsZero() {
		a.state.TickFrame(now.Sub(a.lastTick))
	}
	a.lastTick = now
	a.refresh()
	a.activity.Push(float64(len(a.view.Frame.Transitions)))
}

func (a *App) restart() {
	if err := a.state.Restart(); err != nil {
		a.statusMsg = "Restart failed"
	} else {
		a.statusMsg = "Restarted"
	}
	a.refresh()
}

// refresh pulls a fresh snapshot into the components.
func (a *App) refresh() {
	a.view = a.state.Snapshot()
	a.board.SetView(a.view)
	a.rotation.SetCurrent(a.state.Current().ID)
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}
	if a.confirm.IsVisible() {
		return a.confirm.View()
	}

	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle.Render("✈ Flight Board"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a.board.View(), a.rotation.View()))
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	if a.help.ShowAll {
		b.WriteString("\n")
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes() {
	// header and status bar
	contentHeight := a.height - 2
	if a.help.ShowAll {
		contentHeight -= lipgloss.Height(a.help.View(a.keys))
	}
	boardWidth := a.width - RotationWidth
	if boardWidth < 0 {
		boardWidth = 0
	}
	a.board.SetSize(boardWidth, contentHeight)
	a.rotation.SetSize(RotationWidth, contentHeight)
}

// updateFocus sets focus states on components.
func (a *App) updateFocus() {
	a.board.SetFocused(a.activePanel == PanelBoard)
	a.rotation.SetFocused(a.activePanel == PanelRotation)
}

// renderStatusBar renders the cycle counter, countdown and hints.
func (a App) renderStatusBar() string {
	v := a.view

	parts := []string{styles.CycleStyle.Render("Cycle " + numeral.Counter(v.Cycles))}
	if v.Running {
		bar := widgets.NewCountdown(v.NextIn, v.Interval, components.EffectsEnd(v), countdownWidth).Render()
		parts = append(parts, bar+styles.HelpDescStyle.Render(fmt.Sprintf(" %.1fs", v.NextIn.Seconds())))
	} else {
		parts = append(parts, styles.PausedStyle.Render("paused"))
	}
	parts = append(parts, widgets.NewSparkline(a.activity.Samples(), activityWidth).WithMax(7).Render())
	if !v.Effects {
		parts = append(parts, styles.HelpDescStyle.Render("effects off"))
	}

	switch {
	case v.Err != nil:
		parts = append(parts, styles.ErrorStyle.Render(v.Err.Error()))
	case a.statusMsg != "":
		parts = append(parts, styles.DimItemStyle.Render(a.statusMsg))
	}
	left := strings.Join(parts, "  ")

	var hints []string
	for _, k := range a.keys.ShortHelp() {
		h := k.Help()
		hints = append(hints, styles.HelpKeyStyle.Render(h.Key)+styles.HelpDescStyle.Render(":"+h.Desc))
	}
	right := strings.Join(hints, "  ")

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}
	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}
