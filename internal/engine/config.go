package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/iburimskiy/drone-show/internal/formation"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Config is the immutable configuration an Engine is built from. Each
// Engine takes its own copy, so several can run side by side.
type Config struct {
	Transition     time.Duration
	HoverFrequency float64 // rad/s
	HoverAmplitude float64
	Palette        formation.Palette
	Scene          timeline.Scene

	Drones  int
	Spacing float64
	Speed   float64

	// Seed drives particle phases and ring jitter; zero picks a time-based seed.
	Seed     uint64
	Autoplay bool
}

func DefaultConfig() Config {
	return Config{
		Transition:     2000 * time.Millisecond,
		HoverFrequency: 2,
		HoverAmplitude: 2,
		Palette:        formation.DefaultPalette(),
		Scene:          timeline.DefaultScene(),
		Drones:         1000,
		Spacing:        1,
		Speed:          1,
	}
}

func validateDrones(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: drone count %d", ErrInvalidSetting, n)
	}
	return nil
}

func validateSpacing(s float64) error {
	if !(s > 0) {
		return fmt.Errorf("%w: spacing %v", ErrInvalidSetting, s)
	}
	return nil
}

func validateSpeed(s float64) error {
	if !(s >= 0) {
		return fmt.Errorf("%w: speed %v", ErrInvalidSetting, s)
	}
	return nil
}

func (c Config) validate() error {
	if c.Transition < 0 {
		return fmt.Errorf("%w: transition %v", ErrInvalidSetting, c.Transition)
	}
	return errors.Join(validateDrones(c.Drones), validateSpacing(c.Spacing), validateSpeed(c.Speed))
}
