// snake is a terminal snake game played on a wrap-around field.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in the terminal
//	snake simulate           - Run the autopilot headless and print stats
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible levels
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file (overrides log.file)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrap-around field, in your terminal",
	Long: `Snake is played on a field whose edges wrap around: leaving one side
brings the snake back on the opposite side. Some levels close the sides or
the top and bottom with walls.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Let the autopilot play headless
  config    - Print the effective configuration

Examples:
  snake
  snake play --width 40 --height 20 --interval 100ms
  snake simulate --steps 100000 --seed 42
  snake config > ~/.torus-snake/configs/snake.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides log.file)")

	addFieldFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
