package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00.0", formatDuration(0))
	assert.Equal(t, "00:03.5", formatDuration(3500*time.Millisecond))
	assert.Equal(t, "01:18.0", formatDuration(78*time.Second))
}

func TestSegmentColor(t *testing.T) {
	first := segmentColor(0, 4, 40)
	assert.Equal(t, uint8(40), first.A)
	assert.Greater(t, first.R, first.G, "hue 0 is red")

	assert.NotEqual(t, first, segmentColor(1, 4, 40))
	assert.Equal(t, segmentColor(0, 0, 40), segmentColor(0, 1, 40))
}
