package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock time.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the real clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameTimer turns successive frame timestamps into deltas. The base is
// resampled on every call, so nothing accumulates against a stale reference.
type FrameTimer struct {
	last    time.Time
	started bool
}

// Next returns the time since the previous call; the first call after
// construction or Reset returns zero.
func (f *FrameTimer) Next(now time.Time) time.Duration {
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Reset forgets the previous frame, e.g. when a frame loop is restarted.
func (f *FrameTimer) Reset() {
	f.started = false
	f.last = time.Time{}
}
