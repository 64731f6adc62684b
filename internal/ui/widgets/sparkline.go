// Package widgets provides small TUI visualizations for the board status bar.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are the eight bar heights.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a series as a Unicode bar chart. The newest sample is the
// rightmost bar and is highlighted.
type Sparkline struct {
	Data           []float64
	Width          int
	Max            float64 // fixed scale; zero scales to the data
	NormalColor    lipgloss.Color
	HighlightColor lipgloss.Color
}

// NewSparkline creates a sparkline with default styling.
func NewSparkline(data []float64, width int) Sparkline {
	return Sparkline{
		Data:           data,
		Width:          width,
		NormalColor:    lipgloss.Color("60"),
		HighlightColor: lipgloss.Color("214"),
	}
}

// WithMax fixes the top of the scale.
func (s Sparkline) WithMax(max float64) Sparkline {
	s.Max = max
	return s
}

// Render produces the sparkline string.
func (s Sparkline) Render() string {
	if len(s.Data) == 0 || s.Width <= 0 {
		return ""
	}

	data := s.Data
	if len(data) > s.Width {
		data = data[len(data)-s.Width:]
	}

	top := s.Max
	if top <= 0 {
		for _, v := range data {
			if v > top {
				top = v
			}
		}
	}
	if top <= 0 {
		top = 1
	}

	normal := lipgloss.NewStyle().Foreground(s.NormalColor)
	highlight := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	var b strings.Builder
	for i, v := range data {
		idx := int(v / top * float64(len(sparkBlocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		glyph := string(sparkBlocks[idx])
		if i == len(data)-1 {
			b.WriteString(highlight.Render(glyph))
		} else {
			b.WriteString(normal.Render(glyph))
		}
	}
	return b.String()
}

// History is a fixed-size ring of samples, oldest first.
type History struct {
	samples []float64
	size    int
}

// NewHistory keeps at most size samples.
func NewHistory(size int) *History {
	return &History{size: size}
}

// Push appends v, dropping the oldest sample when full.
func (h *History) Push(v float64) {
	if h.size <= 0 {
		return
	}
	h.samples = append(h.samples, v)
	if len(h.samples) > h.size {
		h.samples = h.samples[len(h.samples)-h.size:]
	}
}

// Samples returns the samples, oldest first.
func (h *History) Samples() []float64 {
	out := make([]float64, len(h.samples))
	copy(out, h.samples)
	return out
}
