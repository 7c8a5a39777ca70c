package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

var (
	flagWidth    int
	flagHeight   int
	flagInterval time.Duration
)

// addFieldFlags registers the flags that override the field and pace config.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Field width (0 = config or terminal width)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Field height (0 = config or terminal height minus status line)")
	cmd.Flags().DurationVar(&flagInterval, "interval", 0, "Step interval, e.g. 120ms (0 = config)")
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagWidth > 0 {
		cfg.Field.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Field.Height = flagHeight
	}
	if flagInterval > 0 {
		cfg.Pace.StepIntervalMS = int(flagInterval.Milliseconds())
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("command-line overrides: %w", err)
	}
	return cfg, nil
}

// newRand returns the level generator's randomness source.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func borderChances(cfg config.SnakeConfig) snake.BorderChances {
	return snake.BorderChances{
		None:  cfg.Borders.NoneChance,
		Sides: cfg.Borders.SidesChance,
		Edges: cfg.Borders.EdgesChance,
	}
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	}), nil
}

// openLogFile opens path for appending. An empty path discards output,
// since the alternate screen owns stdout and stderr while playing.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(config.ExpandHome(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
