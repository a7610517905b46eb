package render

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/drone-show/internal/animation"
	"github.com/iburimskiy/drone-show/internal/formation"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

const (
	// WorldSize is the edge length of the volume the formations are laid out in.
	WorldSize   = 1000.0
	FieldOfView = 800.0
	DepthOffset = 400.0
	BaseRadius  = 2.5
	MinRadius   = 0.4
)

// Projected is a particle mapped onto the screen plane.
type Projected struct {
	X, Y   float64
	Scale  float64
	Radius float64
}

// Project applies the perspective used by the flat renderers, with the
// world origin at (cx, cy) and y pointing up. ok is false for particles
// behind the viewer.
func Project(p animation.Particle, cx, cy float64) (Projected, bool) {
	denom := FieldOfView + p.Z + DepthOffset
	if denom <= 0 {
		return Projected{}, false
	}
	scale := FieldOfView / denom
	return Projected{
		X:      p.X*scale + cx,
		Y:      -p.Y*scale + cy,
		Scale:  scale,
		Radius: math.Max(MinRadius, BaseRadius*scale),
	}, true
}

func RGBA(c formation.Color, alpha uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Bar is a horizontal timeline scrubber.
type Bar struct {
	X, Y, W, H float64
}

func (b Bar) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Fraction maps a screen x onto [0, 1] along the bar.
func (b Bar) Fraction(x float64) float64 {
	if b.W <= 0 {
		return 0
	}
	return clamp01((x - b.X) / b.W)
}

// TimeAt is the show time under fraction f of a show lasting total.
func TimeAt(f float64, total time.Duration) time.Duration {
	return time.Duration(clamp01(f) * float64(total))
}

// Progress is the fraction of the show elapsed at t.
func Progress(t, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return clamp01(float64(t) / float64(total))
}

// Markers returns the x positions of segment starts after the first.
func (b Bar) Markers(tl timeline.Timeline) []float64 {
	if tl.Total <= 0 || len(tl.Segments) < 2 {
		return nil
	}
	out := make([]float64, 0, len(tl.Segments)-1)
	for _, s := range tl.Segments[1:] {
		out = append(out, b.X+Progress(s.Start, tl.Total)*b.W)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
