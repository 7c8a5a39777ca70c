package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The field fills the terminal unless a size
is given; one row is kept for the score line.

Controls:
  Arrows/WASD/HJKL - Steer
  +/-              - Faster/slower
  P/Space          - Pause
  ?                - Help
  Q/Ctrl+C         - Quit

Running into a wall or into the snake starts a new level.

Examples:
  snake play
  snake play --width 30 --height 15
  snake play --interval 80ms --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addFieldFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; fall back to a classic 80x24
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.FitField()
	if cfg.Field.Width > 0 {
		rc.FieldW = cfg.Field.Width
	}
	if cfg.Field.Height > 0 {
		rc.FieldH = cfg.Field.Height
	}
	rc.Seed = flagSeed

	game, err := snake.NewWithBorders(rc.FieldW, rc.FieldH, newRand(rc.Seed), borderChances(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	out, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without logs - game still works
		out, closeLog, _ = openLogFile("")
	}
	logger, err := newLogger(out, cfg.Log.Level)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, config.NewPace(cfg.Pace), rc, logger)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
