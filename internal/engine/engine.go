package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/iburimskiy/drone-show/internal/animation"
	"github.com/iburimskiy/drone-show/internal/clock"
	"github.com/iburimskiy/drone-show/internal/formation"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

// Frame reports what a tick produced.
type Frame struct {
	Time     time.Duration
	Segment  timeline.Segment
	Progress animation.Progress
	// Updated is false when the particle buffer was left as it was.
	Updated bool
	Wrapped bool
}

// Engine drives a show: it owns the clock, the timeline, the cached
// formations and the particle buffer. It is not safe for concurrent use;
// a single frame loop calls Tick and the control methods.
type Engine struct {
	cfg   Config
	log   zerolog.Logger
	wall  clock.TimeProvider
	epoch time.Time
	meter metric.Meter
	inst  instruments

	rng    *rand.Rand
	gen    *formation.Generator
	clock  *clock.Clock
	interp *animation.Interpolator

	scene      timeline.Scene
	timeline   timeline.Timeline
	formations []formation.Formation
	drones     int
	spacing    float64

	lastIndex int
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTimeProvider sets the wall clock used for the hover motion.
func WithTimeProvider(p clock.TimeProvider) Option {
	return func(e *Engine) { e.wall = p }
}

func WithMeter(m metric.Meter) Option {
	return func(e *Engine) { e.meter = m }
}

// New builds an engine from cfg. The configured scene must be valid.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Scene = cfg.Scene.Clone()

	e := &Engine{
		cfg:       cfg,
		log:       zerolog.Nop(),
		wall:      clock.SystemTime{},
		drones:    cfg.Drones,
		spacing:   cfg.Spacing,
		lastIndex: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.meter == nil {
		e.meter = meter()
	}
	inst, err := newInstruments(e.meter)
	if err != nil {
		return nil, err
	}
	e.inst = inst
	e.epoch = e.wall.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(e.epoch.UnixNano())
	}
	e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	e.gen = formation.NewGenerator(cfg.Palette, e.rng)

	if err := cfg.Scene.Validate(); err != nil {
		return nil, err
	}
	tl, forms, err := e.build(cfg.Scene, e.drones, e.spacing)
	if err != nil {
		return nil, err
	}
	e.scene, e.timeline, e.formations = cfg.Scene, tl, forms

	e.clock = clock.New(tl.Total)
	e.clock.SetSpeed(cfg.Speed)
	if cfg.Autoplay {
		e.clock.Play()
	}
	e.interp = animation.NewInterpolator(animation.Settings{
		Transition:     cfg.Transition,
		HoverFrequency: cfg.HoverFrequency,
		HoverAmplitude: cfg.HoverAmplitude,
	}, e.drones, e.rng)

	e.log.Info().
		Str("title", e.scene.Title).
		Int("layers", tl.Len()).
		Dur("total", tl.Total).
		Int("drones", e.drones).
		Msg("engine ready")
	return e, nil
}

// build derives the timeline and one formation per layer. Nothing is
// committed here so a failure leaves the running show untouched.
func (e *Engine) build(scene timeline.Scene, drones int, spacing float64) (timeline.Timeline, []formation.Formation, error) {
	tl, err := timeline.Build(scene.Layers)
	if err != nil {
		return timeline.Timeline{}, nil, err
	}
	forms := make([]formation.Formation, len(scene.Layers))
	for i, l := range scene.Layers {
		if l.Type == formation.Custom {
			if len(l.Points) == 0 {
				return timeline.Timeline{}, nil, fmt.Errorf("layer %d (%s): custom layer without points: %w", i, l.ID, formation.ErrUnknownKind)
			}
			forms[i] = l.Points
			continue
		}
		f, err := e.gen.Generate(l.Type, drones, spacing)
		if err != nil {
			return timeline.Timeline{}, nil, fmt.Errorf("layer %d (%s): %w", i, l.ID, err)
		}
		forms[i] = f
	}
	return tl, forms, nil
}

// Tick advances the clock by the elapsed wall time and then updates the
// particle buffer for the new time, in that order.
func (e *Engine) Tick(delta time.Duration) Frame {
	wrapped := e.clock.Tick(delta)
	if wrapped {
		e.inst.wraps.Add(context.Background(), 1)
	}
	f := e.update()
	f.Wrapped = wrapped
	return f
}

func (e *Engine) update() Frame {
	now := e.clock.Current()
	f := Frame{Time: now}

	seg, ok := e.timeline.SegmentAt(now)
	if !ok {
		e.inst.skipped.Add(context.Background(), 1)
		return f
	}
	f.Segment = seg
	if seg.Index != e.lastIndex {
		e.lastIndex = seg.Index
		e.log.Debug().Int("index", seg.Index).Str("id", seg.ID).Str("type", string(seg.Type)).Msg("segment")
	}

	pr, ok := e.interp.Update(animation.Step{
		Time:       now,
		Segment:    seg,
		Formations: e.formations,
		Count:      e.drones,
		Wall:       e.wall.Now().Sub(e.epoch),
	})
	if !ok {
		e.log.Debug().Int("buffer", e.interp.Len()).Int("drones", e.drones).Msg("frame skipped")
		e.inst.skipped.Add(context.Background(), 1)
		return f
	}
	e.inst.frames.Add(context.Background(), 1)
	f.Progress = pr
	f.Updated = true
	return f
}

// LoadScene replaces the running show with a copy of scene. On failure the
// previous show keeps running unchanged. A successful load rewinds to the start.
func (e *Engine) LoadScene(scene timeline.Scene) error {
	scene = scene.Clone()
	err := scene.Validate()
	var (
		tl    timeline.Timeline
		forms []formation.Formation
	)
	if err == nil {
		tl, forms, err = e.build(scene, e.drones, e.spacing)
	}
	if err != nil {
		e.inst.load(false)
		e.log.Error().Err(err).Str("title", scene.Title).Msg("scene rejected")
		return fmt.Errorf("load scene: %w", err)
	}

	e.scene, e.timeline, e.formations = scene, tl, forms
	e.clock.SetTotal(tl.Total)
	e.clock.Seek(0)
	e.lastIndex = -1
	e.inst.load(true)
	e.log.Info().Str("title", scene.Title).Int("layers", tl.Len()).Dur("total", tl.Total).Msg("scene loaded")
	return nil
}

// SetDroneCount regenerates the formations and reallocates the particle
// buffer for n drones in one step.
func (e *Engine) SetDroneCount(n int) error {
	if err := validateDrones(n); err != nil {
		return err
	}
	if n == e.drones {
		return nil
	}
	_, forms, err := e.build(e.scene, n, e.spacing)
	if err != nil {
		return err
	}
	e.formations = forms
	e.drones = n
	e.interp.Resize(n, e.rng)
	e.log.Info().Int("drones", n).Msg("drone count changed")
	return nil
}

// SetSpacing regenerates the formations at a new spacing multiplier.
func (e *Engine) SetSpacing(s float64) error {
	if err := validateSpacing(s); err != nil {
		return err
	}
	if s == e.spacing {
		return nil
	}
	_, forms, err := e.build(e.scene, e.drones, s)
	if err != nil {
		return err
	}
	e.formations = forms
	e.spacing = s
	e.log.Info().Float64("spacing", s).Msg("spacing changed")
	return nil
}

func (e *Engine) SetSpeed(s float64) error {
	if err := validateSpeed(s); err != nil {
		return err
	}
	e.clock.SetSpeed(s)
	return nil
}

func (e *Engine) Play()            { e.clock.Play() }
func (e *Engine) Pause()           { e.clock.Pause() }
func (e *Engine) TogglePlay() bool { return e.clock.Toggle() }
func (e *Engine) IsPlaying() bool  { return e.clock.IsPlaying() }

// Seek jumps to t. The particles follow on the next Tick.
func (e *Engine) Seek(t time.Duration) { e.clock.Seek(t) }

// Restart rewinds to the beginning without changing the play state.
func (e *Engine) Restart() { e.clock.Seek(0) }

func (e *Engine) CurrentTime() time.Duration { return e.clock.Current() }
func (e *Engine) Speed() float64             { return e.clock.Speed() }
func (e *Engine) Spacing() float64           { return e.spacing }
func (e *Engine) DroneCount() int            { return e.drones }
func (e *Engine) Title() string              { return e.scene.Title }

// Timeline returns the current segments and total duration.
func (e *Engine) Timeline() timeline.Timeline {
	return timeline.Timeline{
		Segments: append([]timeline.Segment(nil), e.timeline.Segments...),
		Total:    e.timeline.Total,
	}
}

// ActiveSegment is the segment to label the current time with.
func (e *Engine) ActiveSegment() (timeline.Segment, bool) {
	return e.timeline.DisplaySegmentAt(e.clock.Current())
}

// Particles borrows the buffer read-only until the next Tick.
func (e *Engine) Particles() animation.View { return e.interp.View() }

// Snapshot copies the particles into dst.
func (e *Engine) Snapshot(dst []animation.Particle) []animation.Particle {
	return e.interp.Snapshot(dst)
}

// IsConfigError reports whether err is a rejected setting or scene.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidSetting) ||
		errors.Is(err, timeline.ErrMalformedScene) ||
		errors.Is(err, timeline.ErrInvalidDuration) ||
		errors.Is(err, formation.ErrUnknownKind)
}
