package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/flight"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startedState(t *testing.T) *app.State {
	t.Helper()
	s := app.NewState(app.Options{})
	require.NoError(t, s.Start())
	return s
}

func TestBoardPanelView(t *testing.T) {
	s := startedState(t)
	p := NewBoardPanel()
	p.SetSize(60, 16)
	p.SetView(s.Snapshot())

	out := p.View()
	assert.Equal(t, "Departures · Snow", p.Title())
	assert.Contains(t, out, "Departures · Snow")
	assert.Contains(t, out, "ZY 2014")
	assert.Contains(t, out, "Boarding")
	assert.Contains(t, out, "01 Apr 2015 09:42")
}

func TestBoardPanelEmptyTitle(t *testing.T) {
	p := NewBoardPanel()
	assert.Equal(t, "Departures", p.Title())
	assert.NotEmpty(t, p.View())
}

func TestEffectsEnd(t *testing.T) {
	s := startedState(t)
	assert.Zero(t, EffectsEnd(s.Snapshot()), "nothing runs before the first cycle")

	s.Tick(3 * time.Second)
	assert.Equal(t, 1500*time.Millisecond, EffectsEnd(s.Snapshot()))

	s.Tick(time.Second)
	assert.Equal(t, 1500*time.Millisecond, EffectsEnd(s.Snapshot()), "measured from cycle start")

	s.Tick(time.Second)
	assert.Zero(t, EffectsEnd(s.Snapshot()))
}

func TestRotationNavigation(t *testing.T) {
	r := NewRotation()
	r.SetSize(30, 10)
	r.SetFocused(true)
	r.SetRecords([]flight.Record{flight.LondonToParisRecord, flight.ParisToRomeRecord})
	r.SetCurrent(flight.LondonToParis)

	r.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, r.Cursor())
	r.Update(runes("j"))
	assert.Equal(t, 1, r.Cursor(), "cursor stops at the last record")

	sel, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, flight.ParisToRome, sel.ID)

	out := r.View()
	assert.Contains(t, out, "● ZY 2014")
	assert.Contains(t, out, "AE 1107")
	assert.Contains(t, out, "gate 045 · Delayed")

	r.Update(runes("k"))
	r.Update(runes("k"))
	assert.Equal(t, 0, r.Cursor())

	r.SetRecords(nil)
	assert.Equal(t, 0, r.Cursor())
	assert.Contains(t, r.View(), "No flights")
}

func TestConfirmDialog(t *testing.T) {
	c := NewConfirmDialog()
	_, handled := c.Update(runes("y"))
	assert.False(t, handled, "hidden dialog ignores input")

	c.Show(ConfirmRestart, "Restart?")
	assert.True(t, c.IsVisible())
	assert.Contains(t, c.View(), "Restart?")

	_, handled = c.Update(runes("x"))
	assert.False(t, handled)
	assert.True(t, c.IsVisible())

	res, handled := c.Update(runes("y"))
	require.True(t, handled)
	assert.Equal(t, ConfirmResult{Action: ConfirmRestart, Confirmed: true}, res)
	assert.False(t, c.IsVisible())

	c.Show(ConfirmRestart, "Restart?")
	res, handled = c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, handled)
	assert.False(t, res.Confirmed)
	assert.Empty(t, c.View())
}
