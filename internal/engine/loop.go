package engine

import (
	"context"
	"time"

	"github.com/iburimskiy/drone-show/internal/clock"
)

// Loop is a fixed-interval frame scheduler for hosts without their own
// frame callback. All engine access happens on the goroutine running Run.
type Loop struct {
	eng      *Engine
	interval time.Duration
	onFrame  func(Frame)
	posted   chan func(*Engine)
	timer    clock.FrameTimer
}

// NewLoop creates a loop ticking eng every interval and handing each
// frame to onFrame, which may read the engine's particles.
func NewLoop(eng *Engine, interval time.Duration, onFrame func(Frame)) *Loop {
	return &Loop{
		eng:      eng,
		interval: interval,
		onFrame:  onFrame,
		posted:   make(chan func(*Engine), 64),
	}
}

// Post queues fn to run on the loop goroutine before the next frame.
// It reports false if the queue is full.
func (l *Loop) Post(fn func(*Engine)) bool {
	select {
	case l.posted <- fn:
		return true
	default:
		return false
	}
}

// Run ticks until ctx is done and returns ctx.Err(). The ticker is
// released on return; a later Run starts with a zero first delta.
func (l *Loop) Run(ctx context.Context) error {
	l.timer.Reset()
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posted:
			fn(l.eng)
		case <-ticker.C:
			l.frame()
		}
	}
}

func (l *Loop) frame() {
	delta := l.timer.Next(l.eng.wall.Now())
	f := l.eng.Tick(delta)
	if l.onFrame != nil {
		l.onFrame(f)
	}
}
