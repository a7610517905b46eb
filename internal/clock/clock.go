package clock

import "time"

// Clock is the show clock. It only moves when Tick is called, so the host
// frame loop decides when time passes.
type Clock struct {
	current time.Duration
	total   time.Duration
	speed   float64
	playing bool
}

// New returns a paused clock at zero running at normal speed.
func New(total time.Duration) *Clock {
	return &Clock{total: total, speed: 1}
}

// Tick advances the clock by delta scaled by the speed multiplier and
// reports whether the show looped. Reaching the end wraps to exactly zero.
func (c *Clock) Tick(delta time.Duration) bool {
	if !c.playing || delta <= 0 {
		return false
	}
	if c.total <= 0 {
		c.current = 0
		return false
	}
	next := c.current + time.Duration(float64(delta)*c.speed)
	if next >= c.total {
		c.current = 0
		return true
	}
	c.current = next
	return false
}

func (c *Clock) Current() time.Duration { return c.current }
func (c *Clock) Speed() float64         { return c.speed }
func (c *Clock) IsPlaying() bool        { return c.playing }

func (c *Clock) Play()  { c.playing = true }
func (c *Clock) Pause() { c.playing = false }

func (c *Clock) Toggle() bool {
	c.playing = !c.playing
	return c.playing
}

// Seek moves the clock to t, clamped to [0, total]. Works while paused.
func (c *Clock) Seek(t time.Duration) {
	if t < 0 {
		t = 0
	}
	if t > c.total {
		t = c.total
	}
	c.current = t
}

// SetSpeed changes the multiplier for subsequent ticks. Negative values stop time.
func (c *Clock) SetSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	c.speed = s
}

// SetTotal changes the loop length. A current time past the new end wraps
// on the next tick.
func (c *Clock) SetTotal(total time.Duration) {
	if total < 0 {
		total = 0
	}
	c.total = total
}
