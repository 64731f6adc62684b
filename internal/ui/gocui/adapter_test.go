package gocui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/settings"
)

type readOnlyStore struct{ *settings.Memory }

func (readOnlyStore) Set(any, string) error { return errors.New("read-only") }

func newTestAdapter(t *testing.T, store settings.Store) (*Adapter, *app.State) {
	t.Helper()
	s := app.NewState(app.Options{Store: store})
	require.NoError(t, s.Start())
	return &Adapter{state: s}, s
}

func TestAdvanceIsCapped(t *testing.T) {
	a, s := newTestAdapter(t, settings.NewMemory())
	a.advance(time.Hour)

	v := s.Snapshot()
	assert.Zero(t, v.Cycles)
	assert.Equal(t, v.Interval-app.MaxTickStep, v.NextIn)
}

func TestKeyHandlersReportStatus(t *testing.T) {
	a, s := newTestAdapter(t, settings.NewMemory())

	require.NoError(t, a.togglePause(nil, nil))
	assert.Equal(t, "Paused", a.status)
	assert.False(t, s.Snapshot().Running)

	require.NoError(t, a.togglePause(nil, nil))
	assert.Equal(t, "Resumed", a.status)

	require.NoError(t, a.toggleEffects(nil, nil))
	assert.Equal(t, "Effects off", a.status)

	require.NoError(t, a.restart(nil, nil))
	assert.Equal(t, "Restarted", a.status)
}

func TestEffectsFailureKeepsMainLoop(t *testing.T) {
	a, s := newTestAdapter(t, readOnlyStore{settings.NewMemory()})

	assert.NoError(t, a.toggleEffects(nil, nil), "errors must not end the main loop")
	assert.Equal(t, "Failed to save effects setting", a.status)
	assert.True(t, s.Snapshot().Effects)
	assert.Error(t, s.Snapshot().Err)
}
