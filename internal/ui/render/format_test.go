package render

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/board"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/sequencer"
)

func showRecord(t *testing.T, b *board.Board, r flight.Record) {
	t.Helper()
	require.NoError(t, b.RenderBackground(r.BackgroundKey))
	for _, f := range flight.Fields {
		require.NoError(t, b.RenderField(f, r.Text(f)))
	}
	b.SetDecorativeVisibility(r.ShowsDecorativeEffect)
}

func TestLane(t *testing.T) {
	lane := []rune(Lane(board.Sprite{X: board.SpriteHome, Alpha: 1}, 30))
	require.Len(t, lane, 30)
	assert.Equal(t, PlaneGlyph, string(lane[6]))

	banked := Lane(board.Sprite{X: 0.5, Alpha: 1, Banked: true}, 10)
	assert.Equal(t, BankedGlyph, string([]rune(banked)[5]))

	assert.Equal(t, strings.Repeat(LaneGlyph, 10), Lane(board.Sprite{X: 1.2, Alpha: 1}, 10), "off the lane")
	assert.Equal(t, strings.Repeat(LaneGlyph, 10), Lane(board.Sprite{X: 0.2}, 10), "transparent")
}

func TestSnowRow(t *testing.T) {
	assert.Equal(t, "     ", SnowRow(0, 5, 0, 0))

	full := SnowRow(1, 200, 1, 0)
	assert.Len(t, full, 200)
	assert.Contains(t, full, SnowGlyph)
	assert.Equal(t, full, SnowRow(1, 200, 1, 0), "pattern is deterministic")
	assert.Equal(t, full, SnowRow(2, 200, 1, SnowStep), "pattern drifts down a row per step")

	thin := SnowRow(1, 200, 0.2, 0)
	assert.Less(t, strings.Count(thin, SnowGlyph), strings.Count(full, SnowGlyph))
}

func TestMergeSnow(t *testing.T) {
	assert.Equal(t, "a**", MergeSnow("a  ", " **"))
	assert.Equal(t, "(_)*", MergeSnow("(_)", "****"))
}

func TestBoardPlainText(t *testing.T) {
	b := board.New(nil)
	showRecord(t, b, flight.LondonToParisRecord)

	out := Board(b.Frame(0), true, false)
	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "DEPARTURES · Snow")
	assert.Contains(t, out, "ZY 2014")
	assert.Contains(t, out, "T1 A33")
	assert.Contains(t, out, "LGW")
	assert.Contains(t, out, "Boarding")
	assert.Contains(t, out, PlaneGlyph)

	sky := board.DefaultCatalog()[flight.BackgroundSnowy].Sky
	first := MergeSnow(sky[0], SnowRow(0, utf8.RuneCountInString(sky[0]), 1, 0))
	assert.Contains(t, out, first, "overlay drawn over the sky")

	calm := Board(b.Frame(0), false, false)
	for _, row := range sky {
		assert.Contains(t, calm, row, "no overlay with effects off")
	}
}

func TestBoardColor(t *testing.T) {
	b := board.New(nil)
	showRecord(t, b, flight.ParisToRomeRecord)

	out := Board(b.Frame(0), true, true)
	assert.Contains(t, out, Fg256("220"))
	assert.Contains(t, out, Yellow+"Delayed"+Reset)
}

func TestFieldTextFlip(t *testing.T) {
	b := board.New(nil)
	showRecord(t, b, flight.LondonToParisRecord)
	b.Animate(sequencerFlip())

	assert.Equal(t, "Boarding", FieldText(b.Frame(0), flight.FieldStatus))
	assert.Equal(t, strings.Repeat(FlapEdge, len("Boarding")), FieldText(b.Frame(240*time.Millisecond), flight.FieldStatus))
	assert.Equal(t, "Delayed", FieldText(b.Frame(450*time.Millisecond), flight.FieldStatus))
}

func TestStatus(t *testing.T) {
	v := app.View{Cycles: 12, Running: true, NextIn: 1500 * time.Millisecond, Effects: true}
	assert.Equal(t, "cycle XII | next in 1.5s", Status(v))

	v = app.View{Running: false, Effects: false, Err: errors.New("boom")}
	assert.Equal(t, "cycle 0 | paused | effects off | error: boom", Status(v))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "FLIGHT", Label(flight.FieldFlightNumber))
	assert.Equal(t, "DATE", Label(flight.FieldSummary))
}

func sequencerFlip() sequencer.Transition {
	return sequencer.Transition{
		Effect:   sequencer.EffectFlip,
		Field:    flight.FieldStatus,
		From:     "Boarding",
		To:       "Delayed",
		Duration: sequencer.FlipDuration,
	}
}
