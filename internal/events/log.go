package events

import (
	"context"
	"errors"
	"log/slog"
)

// LogPublisher writes every event to a structured logger. The headless host
// uses it as its display.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch e := event.(type) {
	case FieldCommitted:
		p.log.InfoContext(ctx, "field committed", "display", e.DisplayID, "field", e.Field, "text", e.Text)
	case BackgroundCommitted:
		p.log.InfoContext(ctx, "background committed", "display", e.DisplayID, "asset", e.AssetKey)
	case OverlayChanged:
		p.log.InfoContext(ctx, "overlay changed", "display", e.DisplayID, "visible", e.Visible)
	default:
		p.log.InfoContext(ctx, "event", "topic", topic, "event", event)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// Fanout publishes to several publishers. Every publisher sees every event;
// the errors are joined.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, topic string, event any) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, topic, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
