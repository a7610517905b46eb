package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// segmentColor spreads n segment markers around the hue wheel.
func segmentColor(i, n int, alpha uint8) color.RGBA {
	if n <= 0 {
		n = 1
	}
	hue := 360 * float64(i) / float64(n)
	r, g, b := colorful.Hsv(hue, 0.6, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// formatDuration formats a duration as MM:SS.t
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	tenths := int(d.Milliseconds()/100) % 10
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths)
}

// keyEdges turns held keys into single presses.
type keyEdges map[ebiten.Key]bool

func (k keyEdges) justPressed(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	jp := pressed && !k[key]
	k[key] = pressed
	return jp
}
