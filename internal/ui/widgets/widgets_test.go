package widgets

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCountdownRatio(t *testing.T) {
	p := NewCountdown(3*time.Second, 3*time.Second, 0, 30)
	assert.Zero(t, p.Ratio())

	p = NewCountdown(time.Second, 3*time.Second, 0, 30)
	assert.InDelta(t, 2.0/3.0, p.Ratio(), 1e-9)
	assert.False(t, p.ShowMarker)

	p = NewCountdown(0, 0, 0, 30)
	assert.Zero(t, p.Ratio())
	assert.Empty(t, p.Render())
}

func TestProgressBarRender(t *testing.T) {
	p := NewProgressBar(0.5, 10)
	assert.Equal(t, 10, lipgloss.Width(p.Render()))

	p = NewCountdown(2*time.Second, 3*time.Second, 1500*time.Millisecond, 10)
	assert.True(t, p.ShowMarker)
	assert.Contains(t, p.Render(), "│")
	assert.Equal(t, 10, lipgloss.Width(p.Render()))

	assert.Empty(t, NewProgressBar(1, 0).Render())
}

func TestSparkline(t *testing.T) {
	assert.Empty(t, NewSparkline(nil, 10).Render())

	out := NewSparkline([]float64{0, 1, 2, 7}, 10).Render()
	assert.Equal(t, 4, lipgloss.Width(out))
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "▁")

	clipped := NewSparkline([]float64{1, 2, 3, 4, 5}, 3).WithMax(5).Render()
	assert.Equal(t, 3, lipgloss.Width(clipped))
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(float64(i))
	}
	assert.Equal(t, []float64{3, 4, 5}, h.Samples())

	empty := NewHistory(0)
	empty.Push(1)
	assert.Empty(t, empty.Samples())
}
