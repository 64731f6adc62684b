package events

import "context"

// NoopPublisher drops every event. It stands in when no destination is
// configured.
type NoopPublisher struct{}

// Publish discards event.
func (NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return ctx.Err()
}

// Close does nothing.
func (NoopPublisher) Close() error {
	return nil
}
