package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/autopilot"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

// Field size used by simulate when neither flags nor config set one.
const (
	simDefaultWidth  = 40
	simDefaultHeight = 20
)

var flagSteps int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play headless",
	Long: `Run the autopilot for a number of steps without a terminal UI and print
how it did. The autopilot steers toward food and avoids cells it cannot
enter; when it is boxed in, the level restarts just as in play.

Logs go to stderr (or --log-file). Ctrl+C stops early and still prints stats.

Examples:
  snake simulate
  snake simulate --steps 1000000 --width 20 --height 10 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 10000, "Number of steps to run")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 0, "Field width (0 = config or 40)")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 0, "Field height (0 = config or 20)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := cfg.Field.Width, cfg.Field.Height
	if width == 0 {
		width = simDefaultWidth
	}
	if height == 0 {
		height = simDefaultHeight
	}

	var out io.Writer = os.Stderr
	if cfg.Log.File != "" {
		f, closeLog, logErr := openLogFile(cfg.Log.File)
		if logErr != nil {
			return logErr
		}
		defer closeLog()
		out = f
	}
	logger, err := newLogger(out, cfg.Log.Level)
	if err != nil {
		return err
	}

	game, err := snake.NewWithBorders(width, height, newRand(flagSeed), borderChances(cfg))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "size", fmt.Sprintf("%dx%d", width, height), "steps", flagSteps, "seed", flagSeed)
	stats, runErr := autopilot.New(game, logger).Run(ctx, flagSteps)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "steps:  %d\nlevels: %d\neaten:  %d\nbest:   %d\n",
		stats.Steps, stats.Levels, stats.Eaten, stats.Best)
	return nil
}
