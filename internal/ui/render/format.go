package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ijuttt/flightboard/internal/app"
	"github.com/ijuttt/flightboard/internal/board"
	"github.com/ijuttt/flightboard/internal/flight"
	"github.com/ijuttt/flightboard/internal/numeral"
)

// Label returns the board label for f.
func Label(f flight.Field) string {
	switch f {
	case flight.FieldFlightNumber:
		return "FLIGHT"
	case flight.FieldGate:
		return "GATE"
	case flight.FieldOrigin:
		return "FROM"
	case flight.FieldDestination:
		return "TO"
	case flight.FieldStatus:
		return "STATUS"
	case flight.FieldSummary:
		return "DATE"
	}
	return strings.ToUpper(f.String())
}

// -----------------------------------------------------------------------------
// Geometry
// -----------------------------------------------------------------------------

// SkyRows returns the sky art to draw and its tint. A crossfade swaps to the
// incoming scene halfway through.
func SkyRows(fr board.Frame) ([]string, string) {
	from, to, p := fr.Scene()
	if p >= 0.5 {
		return to.Sky, to.Tint
	}
	return from.Sky, from.Tint
}

// SnowRow returns width cells of the weather overlay for one sky row. The
// pattern drifts downwards over time and thins out as level drops.
func SnowRow(row, width int, level float64, now time.Duration) string {
	if level <= 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	drift := int(now / SnowStep)
	threshold := uint32(level * SnowDensity * 1000)

	var b strings.Builder
	for col := 0; col < width; col++ {
		h := uint32(col)*73856093 ^ uint32(row-drift)*19349663
		if h%1000 < threshold {
			b.WriteString(SnowGlyph)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// MergeSnow lays snow over sky, keeping sky art where both have a glyph.
func MergeSnow(sky, snow string) string {
	skyRunes := []rune(sky)
	snowRunes := []rune(snow)
	n := max(len(skyRunes), len(snowRunes))
	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
		if i < len(skyRunes) {
			out[i] = skyRunes[i]
		}
		if out[i] == ' ' && i < len(snowRunes) {
			out[i] = snowRunes[i]
		}
	}
	return string(out)
}

// SpriteColumn maps the sprite to a lane cell. It reports false while the
// sprite is invisible or off the lane.
func SpriteColumn(s board.Sprite, width int) (int, bool) {
	if width <= 0 || s.Alpha <= 0 {
		return 0, false
	}
	col := int(s.X * float64(width))
	if col < 0 || col >= width {
		return 0, false
	}
	return col, true
}

// SpriteGlyph returns the plane glyph for the sprite's attitude.
func SpriteGlyph(s board.Sprite) string {
	if s.Banked {
		return BankedGlyph
	}
	return PlaneGlyph
}

// Lane returns the sprite lane as plain text.
func Lane(s board.Sprite, width int) string {
	col, ok := SpriteColumn(s, width)
	if !ok {
		return strings.Repeat(LaneGlyph, width)
	}
	return strings.Repeat(LaneGlyph, col) + SpriteGlyph(s) + strings.Repeat(LaneGlyph, width-col-1)
}

// FieldText returns the text for f, drawn edge-on while a flip is near its
// midpoint.
func FieldText(fr board.Frame, f flight.Field) string {
	text := fr.Text(f)
	if fr.Squash(f) < 0.35 {
		return strings.Repeat(FlapEdge, utf8.RuneCountInString(text))
	}
	return text
}

// -----------------------------------------------------------------------------
// Text Board
// -----------------------------------------------------------------------------

// Board formats a whole frame. With color false no escape sequences are
// written.
func Board(fr board.Frame, effects, color bool) string {
	paint := func(code, s string) string {
		if !color || code == "" {
			return s
		}
		return code + s + Reset
	}

	var b strings.Builder
	from, to, _ := fr.Scene()
	title := to.Title
	if title == "" {
		title = from.Title
	}
	fmt.Fprintf(&b, SectionHeaderFormat, paintIf(color, Bold), "DEPARTURES · "+title, paintIf(color, Reset))

	sky, tint := SkyRows(fr)
	level := 0.0
	if effects {
		level = fr.OverlayLevel()
	}
	for i, row := range sky {
		line := MergeSnow(row, SnowRow(i, utf8.RuneCountInString(row), level, fr.Now))
		b.WriteString(paint(Fg256(tint), line))
		b.WriteByte('\n')
	}

	b.WriteString(paint(White, Lane(fr.Sprite(), LaneWidth)))
	b.WriteByte('\n')

	for _, f := range flight.Fields {
		text := FieldText(fr, f)
		code := Yellow
		switch {
		case f == flight.FieldStatus:
			code = StatusColor(text)
		case fr.Lift(f) > 0.5:
			code = Cyan
		}
		fmt.Fprintf(&b, FieldFormat, LabelWidth, Label(f), paint(code, text))
	}
	return b.String()
}

func paintIf(color bool, code string) string {
	if color {
		return code
	}
	return ""
}

// Status formats the one-line status summary.
func Status(v app.View) string {
	parts := []string{"cycle " + numeral.Counter(v.Cycles)}
	if v.Running {
		parts = append(parts, fmt.Sprintf("next in %.1fs", v.NextIn.Seconds()))
	} else {
		parts = append(parts, "paused")
	}
	if !v.Effects {
		parts = append(parts, "effects off")
	}
	if v.Err != nil {
		parts = append(parts, "error: "+v.Err.Error())
	}
	return strings.Join(parts, " | ")
}

// Help returns the help text for the footer.
func Help() string {
	return "space/p: Pause  e: Effects  r: Restart  q: Quit\n"
}
