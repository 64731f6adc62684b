package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ijuttt/flightboard/internal/board"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
	"github.com/ijuttt/flightboard/internal/timing"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	event any
}

type recordingPublisher struct {
	events []published
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, published{topic, event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestNoopPublisher(t *testing.T) {
	var pub Publisher = NoopPublisher{}
	assert.NoError(t, pub.Publish(context.Background(), TopicFieldCommitted, FieldCommitted{}))
	assert.NoError(t, pub.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pub.Publish(ctx, TopicFieldCommitted, FieldCommitted{}), context.Canceled)
}

func TestNewDisplayID(t *testing.T) {
	a, err := NewDisplayID()
	require.NoError(t, err)
	b, err := NewDisplayID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, DisplayIDPrefix))
	assert.Len(t, a, len(DisplayIDPrefix)+displayIDLength)
	assert.NotEqual(t, a, b)
}

func TestMirrorPublishesCommits(t *testing.T) {
	q := timing.NewQueue()
	b := board.New(nil)
	pub := &recordingPublisher{}
	m := NewMirror(b, pub, "fb-test", nil)

	s := sequencer.New(q, m)
	require.NoError(t, s.Start())

	// background + six fields + overlay
	require.Len(t, pub.events, 8)
	assert.Equal(t, TopicBackgroundCommitted, pub.events[0].topic)
	assert.Equal(t, TopicOverlayChanged, pub.events[7].topic)

	fc, ok := pub.events[1].event.(FieldCommitted)
	require.True(t, ok)
	assert.Equal(t, "fb-test", fc.DisplayID)
	assert.Equal(t, "flight", fc.Field)
	assert.Equal(t, "ZY 2014", fc.Text)

	q.AdvanceTo(sequencer.DefaultInterval)
	assert.True(t, b.Frame(q.Now()).Animating(), "transitions reach the wrapped board")
}

func TestMirrorSkipsFailedCommits(t *testing.T) {
	pub := &recordingPublisher{}
	m := NewMirror(board.New(nil), pub, "fb-test", nil)

	assert.ErrorIs(t, m.RenderBackground("bg-none"), board.ErrAssetNotFound)
	assert.ErrorIs(t, m.RenderField(flight.Field(9), "x"), board.ErrUnknownField)
	assert.Empty(t, pub.events)
}

func TestMirrorIgnoresPublishErrors(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	b := board.New(nil)
	m := NewMirror(b, pub, "fb-test", nil)

	assert.NoError(t, m.RenderField(flight.FieldGate, "B7"))
	assert.Equal(t, "B7", b.Field(flight.FieldGate))
}

func TestNATSPublisher_Publish(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)
	defer pub.Close()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(TopicAll, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	err = pub.Publish(context.Background(), TopicOverlayChanged, OverlayChanged{DisplayID: "fb-1", Visible: true})
	require.NoError(t, err)

	select {
	case msg := <-ch:
		assert.Equal(t, TopicOverlayChanged, msg.Subject)
		var got OverlayChanged
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "fb-1", got.DisplayID)
		assert.True(t, got.Visible)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestNATSPublisher_CloseDeliversPending(t *testing.T) {
	url := startTestNATS(t)

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()
	ch := make(chan *nats.Msg, 16)
	sub, err := nc.ChanSubscribe(TopicFieldCommitted, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, pub.Publish(context.Background(), TopicFieldCommitted, FieldCommitted{DisplayID: "fb-1"}))
	}
	require.NoError(t, pub.Close())

	for i := 0; i < 10; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of 10 events arrived after close", i)
		}
	}
}

func TestNATSPublisher_CancelledContext(t *testing.T) {
	url := startTestNATS(t)
	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pub.Publish(ctx, TopicOverlayChanged, OverlayChanged{}), context.Canceled)
}

func TestNewNATSPublisher_BadURL(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1", nats.Timeout(100*time.Millisecond))
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	var buf strings.Builder
	pub := NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, TopicFieldCommitted, FieldCommitted{DisplayID: "fb-1", Field: "gate", Text: "045"}))
	require.NoError(t, pub.Publish(ctx, TopicBackgroundCommitted, BackgroundCommitted{DisplayID: "fb-1", AssetKey: flight.BackgroundSunny}))
	require.NoError(t, pub.Publish(ctx, TopicOverlayChanged, OverlayChanged{DisplayID: "fb-1", Visible: true}))
	require.NoError(t, pub.Close())

	out := buf.String()
	assert.Contains(t, out, `msg="field committed" display=fb-1 field=gate text=045`)
	assert.Contains(t, out, "asset=bg-sunny")
	assert.Contains(t, out, "visible=true")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, pub.Publish(cancelled, TopicOverlayChanged, OverlayChanged{}), context.Canceled)
}

func TestFanout(t *testing.T) {
	good := &recordingPublisher{}
	bad := &recordingPublisher{err: errors.New("down")}
	f := Fanout{bad, good}

	err := f.Publish(context.Background(), TopicOverlayChanged, OverlayChanged{Visible: true})
	assert.ErrorContains(t, err, "down")
	require.Len(t, good.events, 1, "a failing publisher does not starve the others")
	assert.NoError(t, f.Close())
}
