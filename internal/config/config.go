// Package config provides YAML-based configuration loading and step pacing
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Pace    PaceConfig    `yaml:"pace"`
	Borders BordersConfig `yaml:"borders"`
	Log     LogConfig     `yaml:"log"`
}

// FieldConfig defines the playing field dimensions.
// Zero means fit the terminal.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaceConfig defines the step interval and how far +/- adjust it.
type PaceConfig struct {
	StepIntervalMS int `yaml:"step_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	AdjustMS       int `yaml:"adjust_ms"`
}

// StepInterval returns the configured step interval.
func (p PaceConfig) StepInterval() time.Duration {
	return time.Duration(p.StepIntervalMS) * time.Millisecond
}

// MinInterval returns the shortest allowed step interval.
func (p PaceConfig) MinInterval() time.Duration {
	return time.Duration(p.MinIntervalMS) * time.Millisecond
}

// Adjust returns the amount one speed key changes the interval by.
func (p PaceConfig) Adjust() time.Duration {
	return time.Duration(p.AdjustMS) * time.Millisecond
}

// BordersConfig defines the odds of border blocks on a new level.
type BordersConfig struct {
	NoneChance  float64 `yaml:"none_chance"`
	SidesChance float64 `yaml:"sides_chance"`
	EdgesChance float64 `yaml:"edges_chance"`
}

// LogConfig defines where driver logs go.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards play-mode logs
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first value that cannot be used.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Field.Width < 0 || c.Field.Height < 0:
		return fmt.Errorf("%w: field size %dx%d is negative", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Field.Width == 1:
		return fmt.Errorf("%w: field width must be at least 2", ErrInvalidConfig)
	case c.Pace.MinIntervalMS <= 0:
		return fmt.Errorf("%w: pace.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Pace.StepIntervalMS < c.Pace.MinIntervalMS:
		return fmt.Errorf("%w: pace.step_interval_ms %d below min_interval_ms %d",
			ErrInvalidConfig, c.Pace.StepIntervalMS, c.Pace.MinIntervalMS)
	case c.Pace.AdjustMS <= 0:
		return fmt.Errorf("%w: pace.adjust_ms must be positive", ErrInvalidConfig)
	}

	chances := []struct {
		name string
		p    float64
	}{
		{"none_chance", c.Borders.NoneChance},
		{"sides_chance", c.Borders.SidesChance},
		{"edges_chance", c.Borders.EdgesChance},
	}
	for _, ch := range chances {
		if ch.p < 0 || ch.p > 1 {
			return fmt.Errorf("%w: borders.%s=%v outside [0,1]", ErrInvalidConfig, ch.name, ch.p)
		}
	}
	return nil
}
