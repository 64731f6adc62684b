// Package events publishes board commits so other displays can mirror them.
package events

import (
	"context"
	"time"
)

// Event topic constants
const (
	TopicFieldCommitted      = "flightboard.field.committed"
	TopicBackgroundCommitted = "flightboard.background.committed"
	TopicOverlayChanged      = "flightboard.overlay.changed"

	// TopicAll matches every board topic.
	TopicAll = "flightboard.>"
)

// Event types

type FieldCommitted struct {
	DisplayID string    `json:"display_id"`
	Field     string    `json:"field"`
	Text      string    `json:"text"`
	At        time.Time `json:"at"`
}

type BackgroundCommitted struct {
	DisplayID string    `json:"display_id"`
	AssetKey  string    `json:"asset_key"`
	At        time.Time `json:"at"`
}

type OverlayChanged struct {
	DisplayID string    `json:"display_id"`
	Visible   bool      `json:"visible"`
	At        time.Time `json:"at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
