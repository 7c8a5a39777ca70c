package config

import "time"

// Pace tracks the driver's step interval as the player speeds up or slows down.
type Pace struct {
	cfg      PaceConfig
	interval time.Duration
}

// NewPace creates a pace starting at the configured step interval.
func NewPace(cfg PaceConfig) *Pace {
	return &Pace{
		cfg:      cfg,
		interval: cfg.StepInterval(),
	}
}

// Interval returns the current time between steps.
func (p *Pace) Interval() time.Duration {
	return p.interval
}

// Faster shortens the interval by one adjust step, never going below the minimum.
// It reports whether the interval changed.
func (p *Pace) Faster() bool {
	if p.interval <= p.cfg.MinInterval() {
		return false
	}
	p.interval = max(p.interval-p.cfg.Adjust(), p.cfg.MinInterval())
	return true
}

// Slower lengthens the interval by one adjust step.
func (p *Pace) Slower() {
	p.interval += p.cfg.Adjust()
}
