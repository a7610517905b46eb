package animation

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/drone-show/internal/formation"
)

// Particle is one drone's current position and light colour. Phase is
// fixed at creation and offsets the drone's hover.
type Particle struct {
	X, Y, Z float64
	Color   formation.Color
	Phase   float64
}

func newParticles(n int, rng *rand.Rand) []Particle {
	white := formation.Color{R: 255, G: 255, B: 255}
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{Color: white, Phase: rng.Float64() * 2 * math.Pi}
	}
	return out
}

// View is a read-only borrow of the particle buffer, valid until the next update.
type View struct {
	particles []Particle
}

func (v View) Len() int { return len(v.particles) }

func (v View) At(i int) Particle { return v.particles[i] }

// Each calls fn for every particle in order.
func (v View) Each(fn func(i int, p Particle)) {
	for i, p := range v.particles {
		fn(i, p)
	}
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second, mapping [0,1] onto [0,1].
func EaseInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}
