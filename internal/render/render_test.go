package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/drone-show/internal/animation"
	"github.com/iburimskiy/drone-show/internal/formation"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

func TestProject(t *testing.T) {
	p, ok := Project(animation.Particle{X: 100, Y: 50, Z: 0}, 640, 360)
	require.True(t, ok)
	assert.InDelta(t, 800.0/1200.0, p.Scale, 1e-12)
	assert.InDelta(t, 640+100*p.Scale, p.X, 1e-9)
	assert.InDelta(t, 360-50*p.Scale, p.Y, 1e-9)
	assert.InDelta(t, 2.5*p.Scale, p.Radius, 1e-12)

	far, ok := Project(animation.Particle{Z: 100000}, 0, 0)
	require.True(t, ok)
	assert.Equal(t, MinRadius, far.Radius)

	_, ok = Project(animation.Particle{Z: -1200}, 0, 0)
	assert.False(t, ok)
	_, ok = Project(animation.Particle{Z: -5000}, 0, 0)
	assert.False(t, ok)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 200}, RGBA(formation.Color{R: 1, G: 2, B: 3}, 200))
}

func TestBar(t *testing.T) {
	b := Bar{X: 20, Y: 600, W: 1000, H: 30}
	assert.True(t, b.Contains(20, 600))
	assert.True(t, b.Contains(1020, 630))
	assert.False(t, b.Contains(19, 610))
	assert.False(t, b.Contains(500, 640))

	assert.Equal(t, 0.0, b.Fraction(0))
	assert.Equal(t, 0.5, b.Fraction(520))
	assert.Equal(t, 1.0, b.Fraction(5000))

	assert.Equal(t, 9*time.Second, TimeAt(0.5, 18*time.Second))
	assert.Equal(t, 18*time.Second, TimeAt(2, 18*time.Second))
	assert.Equal(t, 0.25, Progress(2*time.Second, 8*time.Second))
	assert.Equal(t, 0.0, Progress(time.Second, 0))
}

func TestBarMarkers(t *testing.T) {
	tl, err := timeline.Build([]timeline.Layer{
		{Duration: 3 * time.Second},
		{Duration: 5 * time.Second},
		{Duration: 2 * time.Second},
	})
	require.NoError(t, err)

	b := Bar{X: 10, W: 100}
	assert.InDeltaSlice(t, []float64{40, 90}, b.Markers(tl), 1e-9)
	assert.Nil(t, b.Markers(timeline.Timeline{}))
}
