package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:  0, // fit terminal
			Height: 0,
		},
		Pace: PaceConfig{
			StepIntervalMS: 150,
			MinIntervalMS:  50,
			AdjustMS:       50,
		},
		Borders: BordersConfig{
			NoneChance:  0.2,
			SidesChance: 0.5,
			EdgesChance: 0.5,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
