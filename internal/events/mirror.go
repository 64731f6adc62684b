package events

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
)

// DisplayIDPrefix is prepended to generated display ids.
const DisplayIDPrefix = "fb-"

const (
	displayIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	displayIDLength   = 8
	publishTimeout    = 2 * time.Second
)

// NewDisplayID returns a short random id for this board instance.
func NewDisplayID() (string, error) {
	id, err := nanoid.Generate(displayIDAlphabet, displayIDLength)
	if err != nil {
		return "", fmt.Errorf("display id: %w", err)
	}
	return DisplayIDPrefix + id, nil
}

// Mirror wraps a renderer and publishes every successful commit. Publish
// failures are logged and never reach the sequencer.
type Mirror struct {
	next      sequencer.Renderer
	pub       Publisher
	displayID string
	log       *slog.Logger
	now       func() time.Time
}

// NewMirror wraps next. A nil logger discards log output.
func NewMirror(next sequencer.Renderer, pub Publisher, displayID string, log *slog.Logger) *Mirror {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Mirror{
		next:      next,
		pub:       pub,
		displayID: displayID,
		log:       log,
		now:       time.Now,
	}
}

// RenderField implements sequencer.Renderer.
func (m *Mirror) RenderField(f flight.Field, text string) error {
	if err := m.next.RenderField(f, text); err != nil {
		return err
	}
	m.publish(TopicFieldCommitted, FieldCommitted{
		DisplayID: m.displayID,
		Field:     f.String(),
		Text:      text,
		At:        m.now(),
	})
	return nil
}

// RenderBackground implements sequencer.Renderer.
func (m *Mirror) RenderBackground(key string) error {
	if err := m.next.RenderBackground(key); err != nil {
		return err
	}
	m.publish(TopicBackgroundCommitted, BackgroundCommitted{
		DisplayID: m.displayID,
		AssetKey:  key,
		At:        m.now(),
	})
	return nil
}

// SetDecorativeVisibility implements sequencer.Renderer.
func (m *Mirror) SetDecorativeVisibility(visible bool) {
	m.next.SetDecorativeVisibility(visible)
	m.publish(TopicOverlayChanged, OverlayChanged{
		DisplayID: m.displayID,
		Visible:   visible,
		At:        m.now(),
	})
}

// Animate forwards transitions when the wrapped renderer draws them.
func (m *Mirror) Animate(t sequencer.Transition) {
	if a, ok := m.next.(sequencer.Animator); ok {
		a.Animate(t)
	}
}

func (m *Mirror) publish(topic string, event any) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := m.pub.Publish(ctx, topic, event); err != nil {
		m.log.Warn("publish failed", "topic", topic, "display", m.displayID, "error", err)
	}
}
