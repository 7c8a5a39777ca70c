package core

// RuntimeConfig contains what a driver needs to start a game.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FieldW  int   // Field width in cells
	FieldH  int   // Field height in cells
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FieldW:  80,
		FieldH:  23, // one row for the status line
		Seed:    0,  // 0 means use current time in platform layer
	}
}

// FitField sizes the field to the screen, keeping one row for the status line.
func (c *RuntimeConfig) FitField() {
	c.FieldW = c.ScreenW
	c.FieldH = c.ScreenH - 1
}
