package gocui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/flight"
)

func TestLayoutWithRotation(t *testing.T) {
	l := NewLayout(120, 40)
	assert.True(t, l.HasRotation())
	assert.False(t, l.IsTerminalTooSmall())

	x0, y0, x1, _ := l.BoardPanelBounds()
	assert.Equal(t, 0, x0)
	assert.Equal(t, ContentTopOffset, y0)
	assert.Equal(t, 120-RotationWidth-1, x1)

	rx0, _, rx1, _ := l.RotationPanelBounds()
	assert.Equal(t, 120-RotationWidth, rx0)
	assert.Equal(t, 119, rx1)

	_, fy0, _, fy1 := l.FooterBounds()
	assert.Equal(t, 40-FooterHeight-1, fy0)
	assert.Equal(t, 39, fy1)
}

func TestLayoutNarrowTerminal(t *testing.T) {
	l := NewLayout(60, 40)
	assert.False(t, l.HasRotation())
	_, _, x1, _ := l.BoardPanelBounds()
	assert.Equal(t, 59, x1)

	assert.True(t, NewLayout(30, 40).IsTerminalTooSmall())
	assert.True(t, NewLayout(120, 12).IsTerminalTooSmall())
}

func TestRotationText(t *testing.T) {
	s := app.NewState(app.Options{})
	require.NoError(t, s.Start())

	out := rotationText(s)
	assert.Contains(t, out, "● \x1b[0mZY 2014")
	assert.Contains(t, out, "AE 1107")
	assert.Contains(t, out, flight.ParisToRomeRecord.Destination)
}
