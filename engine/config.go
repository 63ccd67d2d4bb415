package engine

import (
	"time"

	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/status"
)

// DefaultFrameInterval paces redraw requests at roughly 60 Hz
const DefaultFrameInterval = 16 * time.Millisecond

// Config holds runner settings
type Config struct {
	// FrameInterval is the period between redraw requests
	FrameInterval time.Duration
	// ClearColor fills the frame before layers paint
	ClearColor platform.RGB
}

// DefaultConfig returns the standard runner settings
func DefaultConfig() Config {
	return Config{
		FrameInterval: DefaultFrameInterval,
		ClearColor:    platform.RGB{R: 12, G: 12, B: 18},
	}
}

// Option customizes a Runner
type Option func(*Runner)

// WithClock replaces the system clock, mainly for tests
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithStats shares an existing metrics registry
func WithStats(reg *status.Registry) Option {
	return func(r *Runner) { r.app.stats = reg }
}

// WithLogger replaces logging.Core() for this runner
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) { r.app.log = l }
}
