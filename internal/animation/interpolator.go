package animation

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/drone-show/internal/formation"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

// Settings tunes the interpolator.
type Settings struct {
	// Transition is how long a morph into the next formation takes,
	// independent of how long that formation is then held.
	Transition time.Duration
	// HoverFrequency is in radians per second of wall time.
	HoverFrequency float64
	HoverAmplitude float64
}

// Step is the input of one frame's update.
type Step struct {
	Time       time.Duration
	Segment    timeline.Segment
	Formations []formation.Formation
	// Count is the configured drone count; a buffer of another length is
	// stale and the frame is skipped.
	Count int
	// Wall is real elapsed time, unaffected by playback speed.
	Wall time.Duration
}

// Progress describes where a frame sits in its segment's transition.
type Progress struct {
	Raw     float64
	Eased   float64
	Settled bool
}

// Interpolator owns the particle buffer and is its only writer.
type Interpolator struct {
	settings  Settings
	particles []Particle
}

func NewInterpolator(settings Settings, count int, rng *rand.Rand) *Interpolator {
	return &Interpolator{settings: settings, particles: newParticles(count, rng)}
}

// Resize reallocates the buffer for count drones with fresh phases.
func (ip *Interpolator) Resize(count int, rng *rand.Rand) {
	ip.particles = newParticles(count, rng)
}

func (ip *Interpolator) Len() int { return len(ip.particles) }

// View exposes the buffer read-only.
func (ip *Interpolator) View() View { return View{particles: ip.particles} }

// Snapshot copies the buffer into dst, reusing its storage.
func (ip *Interpolator) Snapshot(dst []Particle) []Particle {
	return append(dst[:0], ip.particles...)
}

// Progress computes the transition state at time t inside seg. The first
// segment has nothing to morph from and is settled immediately.
func (ip *Interpolator) Progress(t time.Duration, seg timeline.Segment) Progress {
	raw := 1.0
	if seg.Index > 0 && ip.settings.Transition > 0 {
		elapsed := t - seg.Start
		raw = math.Min(float64(elapsed)/float64(ip.settings.Transition), 1)
		raw = math.Max(raw, 0)
	}
	return Progress{Raw: raw, Eased: EaseInOutCubic(raw), Settled: raw >= 1}
}

// Update blends every particle between the previous and current formation.
// It returns false without touching the buffer when the frame cannot be
// computed consistently.
func (ip *Interpolator) Update(s Step) (Progress, bool) {
	idx := s.Segment.Index
	if len(ip.particles) != s.Count || idx < 0 || idx >= len(s.Formations) {
		return Progress{}, false
	}
	to := s.Formations[idx]
	from := to
	if idx > 0 {
		from = s.Formations[idx-1]
	}
	if len(ip.particles) > 0 && (len(from) == 0 || len(to) == 0) {
		return Progress{}, false
	}

	pr := ip.Progress(s.Time, s.Segment)
	t := pr.Eased
	hoverAngle := s.Wall.Seconds() * ip.settings.HoverFrequency

	for i := range ip.particles {
		p := &ip.particles[i]
		start, end := from.At(i), to.At(i)

		p.X = start.X*(1-t) + end.X*t
		p.Y = start.Y*(1-t) + end.Y*t
		p.Z = start.Z*(1-t) + end.Z*t

		if pr.Settled {
			p.Y += math.Sin(hoverAngle+p.Phase) * ip.settings.HoverAmplitude
		}

		if t <= 0.5 {
			p.Color = start.Color
		} else {
			p.Color = end.Color
		}
	}
	return pr, true
}
